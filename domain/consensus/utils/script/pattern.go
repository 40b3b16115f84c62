package script

import "github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"

// lockHeightIndex is the consensus table of lock-height values a
// pay-key-hash-with-lock-height output may encode. Only multiples of a
// coarse granularity are admissible, matching the chain's deterministic
// height-bucketing rule.
var lockHeightIndex = buildLockHeightIndex()

const lockHeightGranularity = 25200 // roughly one week of blocks

func buildLockHeightIndex() map[uint64]bool {
	index := make(map[uint64]bool)
	for h := uint64(0); h <= lockHeightGranularity*300; h += lockHeightGranularity {
		index[h] = true
	}
	return index
}

// IsValidLockHeight reports whether height is a member of the consensus
// lock-height index table.
func IsValidLockHeight(height uint64) bool {
	return lockHeightIndex[height]
}

// IsPayKeyHashWithLockHeight reports whether s is an output script
// carrying a lock height.
func IsPayKeyHashWithLockHeight(s externalapi.Script) bool {
	return s.Pattern() == externalapi.ScriptPatternPayKeyHashWithLockHeight
}

// IsPayKeyHashWithAttenuationModel reports whether s is an output script
// carrying an attenuation model parameter.
func IsPayKeyHashWithAttenuationModel(s externalapi.Script) bool {
	return s.Pattern() == externalapi.ScriptPatternPayKeyHashWithAttenuationModel
}

// IsSignKeyHashWithLockHeight reports whether s is an input script
// encoding a lock-height-gated spend.
func IsSignKeyHashWithLockHeight(s externalapi.Script) bool {
	return s.Pattern() == externalapi.ScriptPatternSignKeyHashWithLockHeight
}

// IsNonStandard reports whether s carries no recognized pattern.
func IsNonStandard(s externalapi.Script) bool {
	return s.Pattern() == externalapi.ScriptPatternNonStandard
}

// IsCoinbase reports whether s is a coinbase input script.
func IsCoinbase(s externalapi.Script) bool {
	return s.Pattern() == externalapi.ScriptPatternCoinbase
}
