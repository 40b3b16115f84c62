package mempool

import (
	"context"

	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
	"github.com/CMakeezer/metaverse/domain/consensus/ruleerrors"
)

// Handler receives a validation verdict exactly once: err is nil on
// success, and inputIndices carries the unconfirmed-input set on success
// or the offending input's index on the errors that are attributable to
// one (ErrInputNotFound, ErrValidateInputsFailed).
type Handler func(err error, tx *externalapi.DomainTransaction, inputIndices []int)

// Start is a thin adapter over ValidateTransaction for callers built
// around a callback rather than a direct return value.
func (v *Validator) Start(ctx context.Context, tx *externalapi.DomainTransaction, handler Handler) {
	result, err := v.ValidateTransaction(ctx, tx)
	if err != nil {
		handler(err, tx, ruleerrors.ExtractInputIndices(err))
		return
	}
	handler(nil, tx, result.UnconfirmedInputs)
}
