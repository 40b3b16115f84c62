package transactionvalidator

import (
	"context"

	"github.com/CMakeezer/metaverse/domain/consensus/model"
	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
)

// checkTransactionPreResolution runs the part of §4.6 step 1's
// check_transaction pipeline that needs nothing beyond the transaction
// and chain-read-only lookups: basic → asset issue → cert issue. None
// of these read an input's UTXOEntry.
func checkTransactionPreResolution(ctx context.Context, tx *externalapi.DomainTransaction, chain model.Chain) error {
	if err := checkTransactionBasic(ctx, tx, chain); err != nil {
		return err
	}
	if err := checkAssetIssueTransaction(tx, chain); err != nil {
		return err
	}
	if err := checkAssetCertIssueTransaction(tx, chain); err != nil {
		return err
	}
	return nil
}

// checkTransactionPostResolution runs the remainder of check_transaction:
// secondary issue → MIT register → DID. Each of these reads at least one
// input's resolved UTXOEntry (spending address, spent asset symbol, or
// DID attribution), so they cannot run before input resolution.
func checkTransactionPostResolution(ctx context.Context, tx *externalapi.DomainTransaction, chain model.Chain) error {
	if err := checkSecondaryIssueTransaction(tx, chain); err != nil {
		return err
	}
	if err := checkAssetMITRegisterTransaction(tx, chain); err != nil {
		return err
	}
	if err := checkDIDTransaction(tx, chain); err != nil {
		return err
	}
	return nil
}
