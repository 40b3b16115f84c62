package transactionvalidator

import (
	"context"

	"github.com/pkg/errors"

	"github.com/CMakeezer/metaverse/domain/consensus/model"
	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
	"github.com/CMakeezer/metaverse/domain/consensus/ruleerrors"
	"github.com/CMakeezer/metaverse/domain/consensus/utils/attenuation"
	"github.com/CMakeezer/metaverse/domain/consensus/utils/constants"
	"github.com/CMakeezer/metaverse/domain/consensus/utils/script"
	"github.com/CMakeezer/metaverse/domain/consensus/utils/symbol"
)

// checkTransactionBasic runs the stateless (or chain-read-only) checks
// named in §4.4, failing with the first violated rule.
func checkTransactionBasic(ctx context.Context, tx *externalapi.DomainTransaction, chain model.Chain) error {
	if tx.Version > constants.MaxTransactionVersion {
		return errors.WithStack(ruleerrors.ErrTransactionVersionError)
	}

	novaActive := IsNovaFeatureActivated(chain)
	if tx.Version == constants.CheckNovaFeatureVersion && !novaActive {
		return errors.WithStack(ruleerrors.ErrNovaFeatureNotActivated)
	}
	if tx.Version == constants.CheckNovaTestnetVersion && !chain.ChainSettings().UseTestnetRules {
		return errors.WithStack(ruleerrors.ErrTransactionVersionError)
	}

	if tx.Version >= constants.CheckOutputScriptVersion {
		for _, output := range tx.Outputs {
			if script.IsNonStandard(output.Script) {
				return errors.WithStack(ruleerrors.ErrScriptNotStandard)
			}
		}
	}

	if len(tx.Inputs) == 0 || len(tx.Outputs) == 0 {
		return errors.WithStack(ruleerrors.ErrEmptyTransaction)
	}

	if serializedSize(tx) > constants.MaxTransactionSize {
		return errors.WithStack(ruleerrors.ErrSizeLimits)
	}

	if err := checkOutputValues(tx); err != nil {
		return err
	}

	if err := checkOutputSymbols(tx, chain); err != nil {
		return err
	}

	if tx.Version >= constants.CheckNovaFeatureVersion {
		if err := checkAttachmentsValid(tx); err != nil {
			return err
		}
	}

	if tx.IsCoinbase() {
		return checkCoinbaseScript(tx)
	}
	if err := checkNonCoinbaseInputs(ctx, tx, chain); err != nil {
		return err
	}

	if err := checkOutputLockHeights(tx); err != nil {
		return err
	}

	if tx.Version >= constants.CheckNovaFeatureVersion {
		if err := checkAttenuationModelParams(tx); err != nil {
			return err
		}
	}

	return nil
}

func serializedSize(tx *externalapi.DomainTransaction) int {
	size := 4 // version
	for _, input := range tx.Inputs {
		size += 32 + 4 + input.SignatureScript.SerializedSize()
	}
	for _, output := range tx.Outputs {
		size += 8 + output.Script.SerializedSize()
	}
	return size
}

func checkOutputValues(tx *externalapi.DomainTransaction) error {
	var total uint64
	for _, output := range tx.Outputs {
		if output.Value > constants.MaxMoney {
			return errors.WithStack(ruleerrors.ErrOutputValueOverflow)
		}
		newTotal := total + output.Value
		if newTotal < total || newTotal > constants.MaxMoney {
			return errors.WithStack(ruleerrors.ErrOutputValueOverflow)
		}
		total = newTotal
	}
	return nil
}

func checkOutputSymbols(tx *externalapi.DomainTransaction, chain model.Chain) error {
	novaActive := IsNovaFeatureActivated(chain)
	for _, output := range tx.Outputs {
		switch {
		case output.IsAsset():
			if !symbol.IsValid(output.AssetSymbol(), novaActive) {
				return errors.WithStack(ruleerrors.ErrAssetSymbolInvalid)
			}
		case output.IsDID():
			if d, ok := output.DID(); ok && !symbol.IsValid(d.Symbol, novaActive) {
				return errors.WithStack(ruleerrors.ErrDIDSymbolInvalid)
			}
		case output.IsAssetMIT():
			if m, ok := output.MIT(); ok && !symbol.IsValid(m.Symbol, novaActive) {
				return errors.WithStack(ruleerrors.ErrMITSymbolInvalid)
			}
		case output.IsAssetCert(), output.IsAssetCertIssue():
			cert, _ := output.AssetCert()
			if !symbol.IsValid(cert.Symbol, novaActive) {
				return errors.WithStack(ruleerrors.ErrAssetSymbolInvalid)
			}
			if cert.OwnerDID == "" || !chain.IsDIDExist(cert.OwnerDID) {
				return errors.WithStack(ruleerrors.ErrDIDAddressNeeded)
			}
		}
	}
	return nil
}

func checkAttachmentsValid(tx *externalapi.DomainTransaction) error {
	for _, output := range tx.Outputs {
		if !attachmentIsValid(output) {
			return errors.WithStack(ruleerrors.ErrAttachmentInvalid)
		}
	}
	return nil
}

// attachmentIsValid checks the payload-internal well-formedness rules an
// attachment must satisfy independent of chain state: non-empty symbols
// and addresses where the payload requires them, and a sane secondary-
// issue threshold.
func attachmentIsValid(output *externalapi.DomainTransactionOutput) bool {
	switch {
	case output.IsAssetIssue(), output.IsAssetSecondaryIssue():
		d, _ := output.AssetDetail()
		return d.Symbol != "" && d.Address != "" && d.IsSecondaryIssueThresholdValueOk()
	case output.IsAssetTransfer():
		t, _ := output.AssetTransfer()
		return t.Symbol != ""
	case output.IsAssetCert(), output.IsAssetCertIssue():
		cert, _ := output.AssetCert()
		return cert.Symbol != "" && cert.Address != ""
	case output.IsAssetMIT():
		m, _ := output.MIT()
		return m.Symbol != "" && m.Address != ""
	case output.IsDID():
		d, _ := output.DID()
		return d.Symbol != "" && d.Address != ""
	default:
		return true
	}
}

func checkCoinbaseScript(tx *externalapi.DomainTransaction) error {
	size := tx.Inputs[0].SignatureScript.SerializedSize()
	if size < constants.CoinbaseScriptMinSize || size > constants.CoinbaseScriptMaxSize {
		return errors.WithStack(ruleerrors.ErrInvalidCoinbaseScriptSize)
	}
	return nil
}

func checkNonCoinbaseInputs(ctx context.Context, tx *externalapi.DomainTransaction, chain model.Chain) error {
	lastHeight := chain.GetLastHeight()
	for i, input := range tx.Inputs {
		if input.PreviousOutpoint.IsNull() {
			return errors.WithStack(ruleerrors.ErrPreviousOutputNull)
		}
		if !script.IsSignKeyHashWithLockHeight(input.SignatureScript) {
			continue
		}
		parentHeight, ok, err := chain.FetchTransactionIndex(ctx, input.PreviousOutpoint.TransactionID)
		if err != nil {
			return errors.WithStack(err)
		}
		if !ok {
			return ruleerrors.ErrInputNotFound(i)
		}
		lockHeight, _ := input.SignatureScript.LockHeight()
		if lockHeight > lastHeight-parentHeight {
			return errors.WithStack(ruleerrors.ErrInvalidInputScriptLockHeight)
		}
	}
	return nil
}

func checkOutputLockHeights(tx *externalapi.DomainTransaction) error {
	for _, output := range tx.Outputs {
		if !script.IsPayKeyHashWithLockHeight(output.Script) {
			continue
		}
		lockHeight, _ := output.Script.LockHeight()
		if !script.IsValidLockHeight(lockHeight) {
			return errors.WithStack(ruleerrors.ErrInvalidOutputScriptLockHeight)
		}
	}
	return nil
}

// checkAttenuationModelParams validates the attenuation schedule embedded
// in any pay-key-hash-with-attenuation-model output against the asset's
// declared maximum supply. Only outputs are checked: the attenuation
// schedule of a spent previous output is not validated here or in
// connect_input.
func checkAttenuationModelParams(tx *externalapi.DomainTransaction) error {
	for _, output := range tx.Outputs {
		if !script.IsPayKeyHashWithAttenuationModel(output.Script) {
			continue
		}
		d, ok := output.AssetDetail()
		if !ok {
			continue
		}
		param, _ := output.Script.AttenuationModelParam()
		if !attenuation.CheckModelParam(param, d.MaximumSupply) {
			return errors.WithStack(ruleerrors.ErrAttenuationModelParamError)
		}
	}
	return nil
}
