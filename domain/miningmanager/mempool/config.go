package mempool

import "github.com/CMakeezer/metaverse/domain/consensus/utils/scriptflags"

// defaultCoinbaseMaturity is the number of confirmations a coinbase
// output needs before it can be spent. The underlying chain's own
// constants module owns the authoritative value; this is the validator's
// default when no caller-supplied Config overrides it.
const defaultCoinbaseMaturity = 100

// Config holds the tunables the mempool validator needs beyond what's
// already baked into the consensus constants.
type Config struct {
	// ScriptVerificationFlags are the flags passed to CheckConsensus.
	// Mempool admission always runs with every flag set; a non-default
	// value here only exists for tests that want to exercise a stricter
	// or looser interpreter configuration.
	ScriptVerificationFlags scriptflags.Flags

	// CoinbaseMaturity is the minimum height gap between a coinbase
	// output's confirmation and a transaction that spends it. Exposed
	// here rather than as a fixed consensus constant because the
	// underlying chain's own constants module is out of scope.
	CoinbaseMaturity uint64
}

// DefaultConfig returns the configuration mempool admission runs with in
// production.
func DefaultConfig() *Config {
	return &Config{
		ScriptVerificationFlags: scriptflags.AllEnabled,
		CoinbaseMaturity:        defaultCoinbaseMaturity,
	}
}
