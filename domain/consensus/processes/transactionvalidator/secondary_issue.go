package transactionvalidator

import (
	"github.com/pkg/errors"

	"github.com/CMakeezer/metaverse/domain/consensus/model"
	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
	"github.com/CMakeezer/metaverse/domain/consensus/ruleerrors"
	"github.com/CMakeezer/metaverse/domain/consensus/utils/attenuation"
	"github.com/CMakeezer/metaverse/domain/consensus/utils/script"
)

// checkSecondaryIssueTransaction implements check_secondaryissue_transaction.
// It is a no-op unless tx carries an asset-secondary-issue output.
func checkSecondaryIssueTransaction(tx *externalapi.DomainTransaction, chain model.Chain) error {
	var secondary *externalapi.DomainTransactionOutput
	var issueCert *externalapi.DomainTransactionOutput
	var transferVolume uint64

	for _, output := range tx.Outputs {
		switch {
		case output.IsAssetSecondaryIssue():
			if secondary != nil {
				return errors.WithStack(ruleerrors.ErrAssetSecondaryIssueError)
			}
			secondary = output
		case output.IsAssetTransfer():
			t, _ := output.AssetTransfer()
			transferVolume += t.Quantity
		case output.IsAssetCert():
			c, _ := output.AssetCert()
			if c.CertType != externalapi.AssetCertTypeIssue {
				return errors.WithStack(ruleerrors.ErrAssetSecondaryIssueError)
			}
			if issueCert != nil {
				return errors.WithStack(ruleerrors.ErrAssetSecondaryIssueError)
			}
			issueCert = output
		}
	}

	if secondary == nil {
		return nil
	}

	detail, _ := secondary.AssetDetail()
	if !detail.IsSecondaryIssueThresholdValueOk() {
		return errors.WithStack(ruleerrors.ErrAssetSecondaryIssueThresholdInvalid)
	}

	for _, other := range tx.Outputs {
		if other == secondary || !other.IsAssetSecondaryIssue() {
			continue
		}
		od, _ := other.AssetDetail()
		if od.Symbol != detail.Symbol || od.Address != detail.Address {
			return errors.WithStack(ruleerrors.ErrAssetSecondaryIssueError)
		}
	}

	if script.IsPayKeyHashWithAttenuationModel(secondary.Script) {
		param, _ := secondary.Script.AttenuationModelParam()
		if !attenuation.CheckModelParam(param, detail.MaximumSupply) {
			return errors.WithStack(ruleerrors.ErrAttenuationModelParamError)
		}
	}

	if IsNovaFeatureActivated(chain) && issueCert == nil {
		return errors.WithStack(ruleerrors.ErrAssetCertError)
	}

	totalVolume := chain.GetAssetVolume(detail.Symbol)
	newTotal := totalVolume + detail.MaximumSupply
	if newTotal < totalVolume {
		return errors.WithStack(ruleerrors.ErrOutputValueOverflow)
	}
	if !detail.OwnsEnoughForSecondaryIssue(transferVolume, totalVolume) {
		return errors.WithStack(ruleerrors.ErrAssetSecondaryIssueShareNotEnough)
	}

	for i, input := range tx.Inputs {
		if input.UTXOEntry == nil {
			continue
		}
		prev := input.UTXOEntry.Output()
		switch {
		case prev.IsAsset():
			if input.UTXOEntry.Address != detail.Address {
				return ruleerrors.ErrValidateInputsFailed(i)
			}
		case prev.IsAssetCert():
			c, _ := prev.AssetCert()
			if input.UTXOEntry.Address != detail.Address || c.Symbol != detail.Symbol || c.CertType != externalapi.AssetCertTypeIssue {
				return ruleerrors.ErrValidateInputsFailed(i)
			}
		}
	}

	return nil
}
