package mempool

import "github.com/CMakeezer/metaverse/infrastructure/logger"

func logAndMeasure(functionName string) (onEnd func()) {
	return logger.LogAndMeasureExecutionTime(log, functionName)
}
