package transactionvalidator

import (
	"github.com/pkg/errors"

	"github.com/CMakeezer/metaverse/domain/consensus/model"
	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
	"github.com/CMakeezer/metaverse/domain/consensus/ruleerrors"
	"github.com/CMakeezer/metaverse/domain/consensus/utils/attenuation"
	"github.com/CMakeezer/metaverse/domain/consensus/utils/constants"
	"github.com/CMakeezer/metaverse/domain/consensus/utils/script"
	"github.com/CMakeezer/metaverse/domain/consensus/utils/symbol"
)

// checkAssetIssueTransaction implements check_asset_issue_transaction. It
// is a no-op unless tx carries an asset-issue output.
func checkAssetIssueTransaction(tx *externalapi.DomainTransaction, chain model.Chain) error {
	var issue *externalapi.DomainTransactionOutput
	var certs []*externalapi.DomainTransactionOutput

	for _, output := range tx.Outputs {
		switch {
		case output.IsAssetIssue():
			if issue != nil {
				return errors.WithStack(ruleerrors.ErrAssetIssueError)
			}
			issue = output
		case output.IsAssetCert():
			certs = append(certs, output)
		case output.IsETP(), output.IsMessage():
			// allowed companions, nothing to accumulate
		default:
			// may belong to another feature's output set; checked there
		}
	}

	if issue == nil {
		return nil
	}

	detail, _ := issue.AssetDetail()
	if !symbol.IsValid(detail.Symbol, true) {
		return errors.WithStack(ruleerrors.ErrAssetSymbolInvalid)
	}
	if !detail.IsSecondaryIssueThresholdValueOk() {
		return errors.WithStack(ruleerrors.ErrAssetSecondaryIssueThresholdInvalid)
	}
	if chain.IsAssetExist(detail.Symbol) {
		return errors.WithStack(ruleerrors.ErrAssetExist)
	}

	for _, other := range tx.Outputs {
		if other == issue || !other.IsAssetIssue() {
			continue
		}
		od, _ := other.AssetDetail()
		if od.Symbol != detail.Symbol || od.Address != detail.Address ||
			od.SecondaryIssueThreshold != detail.SecondaryIssueThreshold {
			return errors.WithStack(ruleerrors.ErrAssetIssueError)
		}
	}

	if script.IsPayKeyHashWithAttenuationModel(issue.Script) {
		param, _ := issue.Script.AttenuationModelParam()
		if !attenuation.CheckModelParam(param, detail.MaximumSupply) {
			return errors.WithStack(ruleerrors.ErrAttenuationModelParamError)
		}
	}

	issueCert, domainCert, namingCert, err := classifyCompanionCerts(certs, detail)
	if err != nil {
		return err
	}

	if issueCert != nil {
		c, _ := issueCert.AssetCert()
		if c.Symbol != detail.Symbol || c.Address != detail.Address {
			return errors.WithStack(ruleerrors.ErrAssetIssueError)
		}
	}

	for _, other := range tx.Outputs {
		switch {
		case other == issue, other == issueCert, other == domainCert, other == namingCert:
			continue
		case other.IsETP(), other.IsMessage():
			continue
		default:
			return errors.WithStack(ruleerrors.ErrAssetIssueError)
		}
	}

	if tx.Version >= constants.CheckNovaFeatureVersion {
		presentTypes := presentCertTypes(certs)
		if !externalapi.CertTypesSatisfyMask(presentTypes, detail.CertMask) {
			return errors.WithStack(ruleerrors.ErrAssetIssueError)
		}
	}

	if symbol.HasDomain(detail.Symbol) {
		domainSymbol := symbol.Domain(detail.Symbol)
		if symbol.IsValidDomain(domainSymbol) {
			if domainCert == nil && namingCert == nil {
				return errors.WithStack(ruleerrors.ErrAssetCertNotProvided)
			}
			owner := certOwner(domainCert, namingCert)
			if owner == "" {
				return errors.WithStack(ruleerrors.ErrAssetCertError)
			}
		}
	}

	return nil
}

func classifyCompanionCerts(certs []*externalapi.DomainTransactionOutput, detail externalapi.AssetDetail) (issueCert, domainCert, namingCert *externalapi.DomainTransactionOutput, err error) {
	domainSymbol := symbol.Domain(detail.Symbol)
	for _, output := range certs {
		c, _ := output.AssetCert()
		switch c.CertType {
		case externalapi.AssetCertTypeIssue:
			if issueCert != nil {
				return nil, nil, nil, errors.WithStack(ruleerrors.ErrAssetIssueError)
			}
			issueCert = output
		case externalapi.AssetCertTypeDomain:
			if domainCert != nil {
				return nil, nil, nil, errors.WithStack(ruleerrors.ErrAssetIssueError)
			}
			if c.Symbol != domainSymbol {
				return nil, nil, nil, errors.WithStack(ruleerrors.ErrAssetIssueError)
			}
			domainCert = output
		case externalapi.AssetCertTypeNaming:
			if namingCert != nil {
				return nil, nil, nil, errors.WithStack(ruleerrors.ErrAssetIssueError)
			}
			if c.Symbol != detail.Symbol {
				return nil, nil, nil, errors.WithStack(ruleerrors.ErrAssetIssueError)
			}
			namingCert = output
		default:
			return nil, nil, nil, errors.WithStack(ruleerrors.ErrAssetIssueError)
		}
	}
	return issueCert, domainCert, namingCert, nil
}

func presentCertTypes(certs []*externalapi.DomainTransactionOutput) []externalapi.AssetCertType {
	types := make([]externalapi.AssetCertType, 0, len(certs))
	for _, output := range certs {
		c, _ := output.AssetCert()
		types = append(types, c.CertType)
	}
	return types
}

func certOwner(outputs ...*externalapi.DomainTransactionOutput) string {
	for _, output := range outputs {
		if output == nil {
			continue
		}
		if c, ok := output.AssetCert(); ok && c.OwnerDID != "" {
			return c.OwnerDID
		}
	}
	return ""
}
