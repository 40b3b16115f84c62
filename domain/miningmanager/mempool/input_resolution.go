package mempool

import (
	"context"

	"github.com/pkg/errors"

	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
	"github.com/CMakeezer/metaverse/domain/consensus/ruleerrors"
)

// resolvedInput is what §4.6 step 6a resolves for one input: the
// previous output itself, its parent height, whether its parent
// transaction is a coinbase, and whether it was found in the mempool
// rather than the confirmed chain.
type resolvedInput struct {
	entry          *externalapi.UTXOEntry
	parentHeight   uint64
	isCoinbase     bool
	fromUnconfirmed bool
}

// resolveInput implements §4.6 step 6a: look the input's previous
// transaction up on the confirmed chain, falling back to the mempool.
func (v *Validator) resolveInput(ctx context.Context, outpoint externalapi.DomainOutpoint) (*resolvedInput, error) {
	if parentHeight, ok, err := v.chain.FetchTransactionIndex(ctx, outpoint.TransactionID); err != nil {
		return nil, errors.WithStack(err)
	} else if ok {
		tx, found, err := v.chain.FetchTransaction(ctx, outpoint.TransactionID)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if !found || int(outpoint.Index) >= len(tx.Outputs) {
			return nil, nil
		}
		output := tx.Outputs[outpoint.Index]
		return &resolvedInput{
			entry:        utxoEntryFromOutput(output, parentHeight, tx.IsCoinbase(), false),
			parentHeight: parentHeight,
			isCoinbase:   tx.IsCoinbase(),
		}, nil
	}

	if tx, ok := v.pool.Find(outpoint.TransactionID); ok {
		if int(outpoint.Index) >= len(tx.Outputs) {
			return nil, nil
		}
		output := tx.Outputs[outpoint.Index]
		return &resolvedInput{
			entry:           utxoEntryFromOutput(output, 0, false, true),
			fromUnconfirmed: true,
		}, nil
	}

	return nil, nil
}

func utxoEntryFromOutput(output *externalapi.DomainTransactionOutput, parentHeight uint64, isCoinbase, fromUnconfirmed bool) *externalapi.UTXOEntry {
	return &externalapi.UTXOEntry{
		Amount:            output.Value,
		Script:            output.Script,
		Attachment:        output.Attachment,
		Address:           output.Address,
		BlockDAAScore:     parentHeight,
		IsCoinbase:        isCoinbase,
		IsFromUnconfirmed: fromUnconfirmed,
	}
}

// mustResolveInput wraps resolveInput with the input_not_found error the
// orchestrator returns when lookup fails in both stores.
func (v *Validator) mustResolveInput(ctx context.Context, outpoint externalapi.DomainOutpoint, inputIndex int) (*resolvedInput, error) {
	resolved, err := v.resolveInput(ctx, outpoint)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		return nil, ruleerrors.ErrInputNotFound(inputIndex)
	}
	return resolved, nil
}
