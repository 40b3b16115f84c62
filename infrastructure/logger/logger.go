package logger

import (
	"fmt"
	"time"
)

// logEntry is a single formatted log line queued for a Backend's writers.
type logEntry struct {
	level Level
	log   []byte
}

// Logger writes prefixed, leveled log lines for one subsystem into a
// shared Backend. The zero value is not usable; construct one with
// Backend.Logger or the package-level RegisterSubSystem.
type Logger struct {
	level        Level
	subsystemTag string
	backend      *Backend
	writeChan    chan logEntry
}

// defaultBackend is the process-wide backend used by RegisterSubSystem.
// Packages that want a dedicated backend (for a separate log file, for
// instance) should call NewBackend directly instead.
var defaultBackend = NewBackend()

// RegisterSubSystem returns a Logger tagged with the given subsystem name,
// backed by the package's default Backend. This mirrors the
// `var log = logger.RegisterSubSystem("TAG")` idiom used throughout the
// codebase this package was adapted from.
func RegisterSubSystem(subsystemTag string) *Logger {
	return defaultBackend.Logger(subsystemTag)
}

// SetLevel sets the logging level below which messages are filtered out.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// Level returns the logger's current verbosity level.
func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) write(level Level, s string) {
	if level < l.level {
		return
	}
	line := fmt.Sprintf("%s [%s] %s %s\n", time.Now().Format("2006-01-02 15:04:05.000"),
		level.String(), l.subsystemTag, s)
	select {
	case l.writeChan <- logEntry{level: level, log: []byte(line)}:
	default:
		// The backend isn't running (Run was never called) or its buffer
		// is full; drop rather than block the caller.
	}
}

// Tracef formats and logs a message at the trace level.
func (l *Logger) Tracef(format string, args ...interface{}) { l.write(LevelTrace, fmt.Sprintf(format, args...)) }

// Debugf formats and logs a message at the debug level.
func (l *Logger) Debugf(format string, args ...interface{}) { l.write(LevelDebug, fmt.Sprintf(format, args...)) }

// Infof formats and logs a message at the info level.
func (l *Logger) Infof(format string, args ...interface{}) { l.write(LevelInfo, fmt.Sprintf(format, args...)) }

// Warnf formats and logs a message at the warn level.
func (l *Logger) Warnf(format string, args ...interface{}) { l.write(LevelWarn, fmt.Sprintf(format, args...)) }

// Errorf formats and logs a message at the error level.
func (l *Logger) Errorf(format string, args ...interface{}) { l.write(LevelError, fmt.Sprintf(format, args...)) }

// Criticalf formats and logs a message at the critical level.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.write(LevelCritical, fmt.Sprintf(format, args...))
}

// Trace logs a message at the trace level.
func (l *Logger) Trace(args ...interface{}) { l.write(LevelTrace, fmt.Sprint(args...)) }

// Debug logs a message at the debug level.
func (l *Logger) Debug(args ...interface{}) { l.write(LevelDebug, fmt.Sprint(args...)) }

// Info logs a message at the info level.
func (l *Logger) Info(args ...interface{}) { l.write(LevelInfo, fmt.Sprint(args...)) }

// Warn logs a message at the warn level.
func (l *Logger) Warn(args ...interface{}) { l.write(LevelWarn, fmt.Sprint(args...)) }

// Error logs a message at the error level.
func (l *Logger) Error(args ...interface{}) { l.write(LevelError, fmt.Sprint(args...)) }
