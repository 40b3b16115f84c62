package transactionvalidator

import (
	"context"

	"github.com/CMakeezer/metaverse/domain/consensus/model"
	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
)

// transactionValidator implements model.TransactionValidator: the
// {basic → asset issue → cert issue → secondary issue → MIT register →
// DID} pipeline, split into a pre- and post-input-resolution phase.
type transactionValidator struct {
}

// New constructs a model.TransactionValidator.
func New() model.TransactionValidator {
	return &transactionValidator{}
}

// CheckTransactionPreResolution implements model.TransactionValidator.
func (v *transactionValidator) CheckTransactionPreResolution(ctx context.Context, tx *externalapi.DomainTransaction, chain model.Chain) error {
	return checkTransactionPreResolution(ctx, tx, chain)
}

// CheckTransactionPostResolution implements model.TransactionValidator.
func (v *transactionValidator) CheckTransactionPostResolution(ctx context.Context, tx *externalapi.DomainTransaction, chain model.Chain) error {
	return checkTransactionPostResolution(ctx, tx, chain)
}
