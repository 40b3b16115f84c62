package mempool

import (
	"context"

	"github.com/pkg/errors"

	"github.com/CMakeezer/metaverse/domain/consensus/model"
	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
	"github.com/CMakeezer/metaverse/domain/consensus/ruleerrors"
	"github.com/CMakeezer/metaverse/domain/consensus/utils/consensushashing"
)

// ValidateTransaction decides whether tx is admissible into the mempool,
// running the §4.6 orchestrator pipeline. check_transaction is split
// into a pre-resolution phase (basic, asset issue, cert issue — none of
// which read a resolved UTXOEntry) and a post-resolution phase
// (secondary issue, MIT register, DID), so that only the checks that
// actually need the resolved previous outputs are deferred past input
// resolution; see DESIGN.md for the rationale. The outright coinbase
// rejection runs first, as the spec requires.
func (v *Validator) ValidateTransaction(ctx context.Context, tx *externalapi.DomainTransaction) (*Result, error) {
	onEnd := logAndMeasure("ValidateTransaction")
	defer onEnd()

	if tx.IsCoinbase() {
		return nil, errors.WithStack(ruleerrors.ErrCoinbaseTransaction)
	}

	if err := v.txValidator.CheckTransactionPreResolution(ctx, tx, v.chain); err != nil {
		return nil, err
	}

	hash := consensushashing.TransactionID(tx)

	if v.pool.IsInPool(hash) {
		return nil, errors.WithStack(ruleerrors.ErrDuplicate)
	}

	if _, found, err := v.chain.FetchTransaction(ctx, hash); err != nil {
		return nil, errors.WithStack(err)
	} else if found {
		return nil, errors.WithStack(ruleerrors.ErrDuplicate)
	}

	if v.pool.IsSpentInPool(tx) {
		return nil, errors.WithStack(ruleerrors.ErrDoubleSpend)
	}

	lastHeight, err := v.chain.FetchLastHeight(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	agg := newAggregates(lastHeight)

	for i, input := range tx.Inputs {
		resolved, err := v.mustResolveInput(ctx, input.PreviousOutpoint, i)
		if err != nil {
			return nil, err
		}
		input.UTXOEntry = resolved.entry

		if err := agg.connectInput(tx, i, resolved.parentHeight, resolved.isCoinbase, resolved.entry, v.scriptVerifier, v.config.ScriptVerificationFlags, v.config.CoinbaseMaturity); err != nil {
			return nil, ruleerrors.ErrValidateInputsFailed(i)
		}

		status, err := v.chain.FetchSpend(ctx, input.PreviousOutpoint)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if status != model.Unspent {
			return nil, errors.WithStack(ruleerrors.ErrDoubleSpend)
		}

		if resolved.fromUnconfirmed {
			agg.unconfirmedInputs = append(agg.unconfirmedInputs, i)
		}
	}

	if err := v.txValidator.CheckTransactionPostResolution(ctx, tx, v.chain); err != nil {
		return nil, err
	}

	if err := tallyFees(tx, agg.valueIn); err != nil {
		return nil, err
	}

	if err := checkAssetConservation(tx, agg); err != nil {
		return nil, err
	}

	return &Result{UnconfirmedInputs: agg.unconfirmedInputs}, nil
}
