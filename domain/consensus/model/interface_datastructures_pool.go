package model

import "github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"

// Pool is the read-only mempool storage interface the validator depends
// on. Unlike Chain, every method here is synchronous: the mempool is an
// in-memory index, never a disk or network round trip.
type Pool interface {
	// IsInPool reports whether a transaction with this hash is already
	// in the pool.
	IsInPool(hash externalapi.DomainTransactionID) bool

	// Find returns the pooled transaction with this hash, if any.
	Find(hash externalapi.DomainTransactionID) (tx *externalapi.DomainTransaction, ok bool)

	// IsSpentInPool reports whether any pooled transaction already
	// spends one of tx's inputs.
	IsSpentInPool(tx *externalapi.DomainTransaction) bool
}
