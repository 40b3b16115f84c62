package mempool

import (
	"github.com/CMakeezer/metaverse/domain/consensus/model"
	"github.com/CMakeezer/metaverse/infrastructure/logger"
)

var log = logger.RegisterSubSystem("MMPL")

// Validator decides whether a candidate transaction is admissible into
// the mempool, relative to the confirmed chain plus the current mempool
// state. A Validator is stateless between calls; every piece of
// per-transaction state lives in the aggregates constructed fresh inside
// ValidateTransaction.
type Validator struct {
	chain          model.Chain
	pool           model.Pool
	txValidator    model.TransactionValidator
	scriptVerifier model.ScriptVerifier
	config         *Config
}

// New constructs a Validator.
func New(chain model.Chain, pool model.Pool, txValidator model.TransactionValidator, scriptVerifier model.ScriptVerifier, config *Config) *Validator {
	if config == nil {
		config = DefaultConfig()
	}
	return &Validator{
		chain:          chain,
		pool:           pool,
		txValidator:    txValidator,
		scriptVerifier: scriptVerifier,
		config:         config,
	}
}
