package attenuation

import "encoding/binary"

// Param is a decoded attenuation model parameter blob: a sequence of
// (lockHeight, unlockedQuantity) steps describing how much of an asset's
// maximum supply becomes spendable at each height.
type Param struct {
	Steps []Step
}

// Step is one unlock point of an attenuation schedule.
type Step struct {
	LockHeight       uint64
	UnlockedQuantity uint64
}

// Decode parses the wire encoding of an attenuation model parameter blob:
// a uint32 step count followed by that many (uint64, uint64) pairs, all
// little-endian. It returns ok=false on any malformed input.
func Decode(raw []byte) (Param, bool) {
	if len(raw) < 4 {
		return Param{}, false
	}
	count := binary.LittleEndian.Uint32(raw[:4])
	raw = raw[4:]
	if uint64(len(raw)) != uint64(count)*16 {
		return Param{}, false
	}
	steps := make([]Step, count)
	for i := range steps {
		steps[i].LockHeight = binary.LittleEndian.Uint64(raw[i*16 : i*16+8])
		steps[i].UnlockedQuantity = binary.LittleEndian.Uint64(raw[i*16+8 : i*16+16])
	}
	return Param{Steps: steps}, true
}

// CheckModelParam reports whether raw decodes to a well-formed attenuation
// schedule whose unlocked quantities sum to exactly maximumSupply and
// whose lock heights are strictly increasing.
func CheckModelParam(raw []byte, maximumSupply uint64) bool {
	param, ok := Decode(raw)
	if !ok || len(param.Steps) == 0 {
		return false
	}
	var total uint64
	var lastHeight uint64
	for i, step := range param.Steps {
		if i > 0 && step.LockHeight <= lastHeight {
			return false
		}
		lastHeight = step.LockHeight
		newTotal := total + step.UnlockedQuantity
		if newTotal < total {
			return false
		}
		total = newTotal
	}
	return total == maximumSupply
}
