package transactionvalidator

import (
	"github.com/pkg/errors"

	"github.com/CMakeezer/metaverse/domain/consensus/model"
	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
	"github.com/CMakeezer/metaverse/domain/consensus/ruleerrors"
	"github.com/CMakeezer/metaverse/internal/address"
)

// checkDIDTransaction implements check_did_transaction.
func checkDIDTransaction(tx *externalapi.DomainTransaction, chain model.Chain) error {
	if err := checkDIDAddressAttachments(tx, chain); err != nil {
		return err
	}

	var register, transfer *externalapi.DomainTransactionOutput
	for _, output := range tx.Outputs {
		switch {
		case output.IsDIDRegister():
			if register != nil || transfer != nil {
				return errors.WithStack(ruleerrors.ErrDIDMultiTypeExist)
			}
			register = output
		case output.IsDIDTransfer():
			if register != nil || transfer != nil {
				return errors.WithStack(ruleerrors.ErrDIDMultiTypeExist)
			}
			transfer = output
		}
	}

	if register != nil {
		if err := checkDIDRegister(tx, chain, register); err != nil {
			return err
		}
	}
	if transfer != nil {
		if err := checkDIDTransfer(tx, chain, transfer); err != nil {
			return err
		}
	}

	return checkDIDAssetAttribution(tx)
}

// checkDIDAddressAttachments implements the output-level address and
// from/to-did checks that apply to every output in the transaction,
// regardless of which feature it otherwise belongs to.
func checkDIDAddressAttachments(tx *externalapi.DomainTransaction, chain model.Chain) error {
	for _, output := range tx.Outputs {
		// check_attachment_address: the output's address must be a
		// well-formed address under the chain's encoding. This is a pure
		// format check and does not consult chain state.
		if output.Address != "" && !address.IsValid(output.Address) {
			return errors.WithStack(ruleerrors.ErrDIDAddressNotMatch)
		}
		if output.Attachment.ToDID != "" {
			symbol, ok := chain.GetDIDFromAddress(output.Address)
			if !ok || symbol != output.Attachment.ToDID {
				return errors.WithStack(ruleerrors.ErrDIDAddressNotMatch)
			}
		}
		if output.Attachment.FromDID != "" {
			if !anyInputResolvesToDID(tx, chain, output.Attachment.FromDID) {
				return errors.WithStack(ruleerrors.ErrDIDAddressNotMatch)
			}
		}
	}
	return nil
}

func anyInputResolvesToDID(tx *externalapi.DomainTransaction, chain model.Chain, did string) bool {
	for _, input := range tx.Inputs {
		if input.UTXOEntry == nil {
			continue
		}
		if symbol, ok := chain.GetDIDFromAddress(input.UTXOEntry.Address); ok && symbol == did {
			return true
		}
	}
	return false
}

func checkDIDRegister(tx *externalapi.DomainTransaction, chain model.Chain, register *externalapi.DomainTransactionOutput) error {
	did, _ := register.DID()
	if chain.IsValidAddress(did.Symbol) {
		return errors.WithStack(ruleerrors.ErrDIDSymbolInvalid)
	}
	if chain.IsDIDExist(did.Symbol) {
		return errors.WithStack(ruleerrors.ErrDIDExist)
	}
	if _, ok := chain.GetDIDFromAddress(did.Address); ok {
		return errors.WithStack(ruleerrors.ErrAddressRegisteredDID)
	}
	for _, input := range tx.Inputs {
		if input.UTXOEntry == nil {
			continue
		}
		if input.UTXOEntry.Output().IsETP() && input.UTXOEntry.Address == did.Address {
			return nil
		}
	}
	return errors.WithStack(ruleerrors.ErrDIDInputError)
}

func checkDIDTransfer(tx *externalapi.DomainTransaction, chain model.Chain, transfer *externalapi.DomainTransactionOutput) error {
	did, _ := transfer.DID()
	if !chain.IsDIDExist(did.Symbol) {
		return errors.WithStack(ruleerrors.ErrDIDNotExist)
	}
	if _, ok := chain.GetDIDFromAddress(did.Address); ok {
		return errors.WithStack(ruleerrors.ErrAddressRegisteredDID)
	}
	if len(tx.Inputs) != 2 {
		return errors.WithStack(ruleerrors.ErrDIDInputError)
	}

	spendsPriorDID := false
	spendsNewETP := false
	for _, input := range tx.Inputs {
		if input.UTXOEntry == nil {
			continue
		}
		prev := input.UTXOEntry.Output()
		if prev.IsDID() {
			if d, ok := prev.DID(); ok && d.Symbol == did.Symbol {
				spendsPriorDID = true
			}
		}
		if prev.IsETP() && input.UTXOEntry.Address == did.Address {
			spendsNewETP = true
		}
	}
	if !spendsPriorDID || !spendsNewETP {
		return errors.WithStack(ruleerrors.ErrDIDInputError)
	}
	return nil
}

// checkDIDAssetAttribution implements the asset-issue/secondary-issue and
// asset-cert DID-verify attribution rule: when an output's attachment
// version marks it DID-verified, the asset's issuer (or the cert's owner)
// must equal the attachment's to_did.
func checkDIDAssetAttribution(tx *externalapi.DomainTransaction) error {
	const didVerifyAttachmentVersion = 2
	for _, output := range tx.Outputs {
		if output.Attachment.Version != didVerifyAttachmentVersion || output.Attachment.ToDID == "" {
			continue
		}
		if d, ok := output.AssetDetail(); ok {
			if d.IssuerDID != output.Attachment.ToDID {
				return errors.WithStack(ruleerrors.ErrAssetDIDRegisterNotMatch)
			}
			continue
		}
		if c, ok := output.AssetCert(); ok {
			if c.OwnerDID != output.Attachment.ToDID {
				return errors.WithStack(ruleerrors.ErrAssetDIDRegisterNotMatch)
			}
		}
	}
	return nil
}
