package externalapi

// ScriptPattern classifies a locking or unlocking script into one of the
// templates the validator needs to recognize. Script *execution* belongs to
// the consensus script interpreter, an external collaborator this package
// never implements (see model.ScriptVerifier); pattern classification,
// by contrast, is the validator's own business — it is how §4.4 recognizes
// lock-height and attenuation-model outputs without running the script.
type ScriptPattern uint8

// Script pattern constants.
const (
	ScriptPatternNonStandard ScriptPattern = iota
	ScriptPatternPayKeyHash
	ScriptPatternPayKeyHashWithLockHeight
	ScriptPatternPayKeyHashWithAttenuationModel
	ScriptPatternPayScriptHash
	ScriptPatternSignKeyHash
	ScriptPatternSignKeyHashWithLockHeight
	ScriptPatternSignMultiSig
	ScriptPatternCoinbase
)

// Script wraps the raw bytes consumed by the script interpreter together
// with its pre-classified pattern and any parameters that pattern carries.
// A Script is built by whatever upstream component decodes the wire script
// (out of scope here, per spec §1); the validator only reads it.
type Script struct {
	Raw           []byte
	pattern       ScriptPattern
	lockHeight    uint64
	hasLockHeight bool
	modelParam    []byte
}

// NewScript builds a script wrapper with the given pattern and no lock
// height or attenuation model parameter.
func NewScript(raw []byte, pattern ScriptPattern) Script {
	return Script{Raw: raw, pattern: pattern}
}

// NewScriptWithLockHeight builds a script wrapper for one of the
// lock-height-carrying patterns (pay-key-hash-with-lock-height on an
// output, sign-key-hash-with-lock-height on an input).
func NewScriptWithLockHeight(raw []byte, pattern ScriptPattern, lockHeight uint64) Script {
	return Script{Raw: raw, pattern: pattern, lockHeight: lockHeight, hasLockHeight: true}
}

// NewScriptWithAttenuationModel builds a script wrapper for the
// pay-key-hash-with-attenuation-model pattern.
func NewScriptWithAttenuationModel(raw []byte, modelParam []byte) Script {
	return Script{Raw: raw, pattern: ScriptPatternPayKeyHashWithAttenuationModel, modelParam: modelParam}
}

// Pattern returns the script's classified pattern.
func (s Script) Pattern() ScriptPattern {
	return s.pattern
}

// LockHeight returns the embedded lock height and true, if the script's
// pattern carries one.
func (s Script) LockHeight() (uint64, bool) {
	return s.lockHeight, s.hasLockHeight
}

// AttenuationModelParam returns the embedded attenuation model parameter
// blob and true, if the script is a pay-key-hash-with-attenuation-model
// script.
func (s Script) AttenuationModelParam() ([]byte, bool) {
	if s.pattern != ScriptPatternPayKeyHashWithAttenuationModel {
		return nil, false
	}
	return s.modelParam, true
}

// SerializedSize approximates the wire size of the script, used by the
// coinbase script size check and the overall transaction size check.
func (s Script) SerializedSize() int {
	return len(s.Raw)
}
