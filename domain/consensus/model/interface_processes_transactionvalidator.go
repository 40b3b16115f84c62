package model

import (
	"context"

	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
)

// TransactionValidator applies the check_transaction pipeline of §4.6
// step 1: {basic → asset issue → cert issue → secondary issue → MIT
// register → DID}. It is split into two phases because the secondary
// issue, MIT register, and DID rules read each input's resolved
// UTXOEntry, while the rest of the pipeline does not and can run before
// input resolution, preserving the original error precedence for
// malformed transactions over missing-input errors.
type TransactionValidator interface {
	// CheckTransactionPreResolution runs the basic, asset-issue, and
	// cert-issue checks, none of which depend on input resolution. It
	// returns the first violated rule, if any.
	CheckTransactionPreResolution(ctx context.Context, tx *externalapi.DomainTransaction, chain Chain) error

	// CheckTransactionPostResolution runs the secondary-issue, MIT
	// register, and DID checks once every input's UTXOEntry has been
	// populated. It returns the first violated rule, if any.
	CheckTransactionPostResolution(ctx context.Context, tx *externalapi.DomainTransaction, chain Chain) error
}
