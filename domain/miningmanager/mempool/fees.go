package mempool

import (
	"github.com/pkg/errors"

	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
	"github.com/CMakeezer/metaverse/domain/consensus/ruleerrors"
	"github.com/CMakeezer/metaverse/domain/consensus/utils/constants"
)

// tallyFees implements §4.6 step 7.
func tallyFees(tx *externalapi.DomainTransaction, valueIn uint64) error {
	valueOut := tx.TotalOutputValue()
	if valueOut > valueIn {
		return errors.WithStack(ruleerrors.ErrFeesOutOfRange)
	}
	fee := valueIn - valueOut
	if fee < constants.MinTransactionFee || fee > constants.MaxMoney {
		return errors.WithStack(ruleerrors.ErrFeesOutOfRange)
	}
	return nil
}
