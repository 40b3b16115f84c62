package transactionvalidator

import (
	"github.com/pkg/errors"

	"github.com/CMakeezer/metaverse/domain/consensus/model"
	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
	"github.com/CMakeezer/metaverse/domain/consensus/ruleerrors"
)

// checkAssetMITRegisterTransaction implements
// check_asset_mit_register_transaction. It is a no-op unless tx carries a
// mit-register output.
func checkAssetMITRegisterTransaction(tx *externalapi.DomainTransaction, chain model.Chain) error {
	var address string
	hasRegister := false

	for _, output := range tx.Outputs {
		if !output.IsAssetMITRegister() {
			continue
		}
		hasRegister = true
		mit, _ := output.MIT()
		if _, ok := chain.GetRegisteredMIT(mit.Symbol); ok {
			return errors.WithStack(ruleerrors.ErrMITExist)
		}
		if address == "" {
			address = mit.Address
		} else if address != mit.Address {
			return errors.WithStack(ruleerrors.ErrMITRegisterError)
		}
	}

	if !hasRegister {
		return nil
	}

	for i, input := range tx.Inputs {
		if input.UTXOEntry == nil || !input.UTXOEntry.Output().IsETP() {
			continue
		}
		if input.UTXOEntry.Address != address {
			return ruleerrors.ErrValidateInputsFailed(i)
		}
	}

	return nil
}
