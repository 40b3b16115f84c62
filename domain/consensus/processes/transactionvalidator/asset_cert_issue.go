package transactionvalidator

import (
	"github.com/pkg/errors"

	"github.com/CMakeezer/metaverse/domain/consensus/model"
	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
	"github.com/CMakeezer/metaverse/domain/consensus/ruleerrors"
	"github.com/CMakeezer/metaverse/domain/consensus/utils/symbol"
)

// checkAssetCertIssueTransaction implements check_asset_cert_issue_transaction.
// It is a no-op unless tx carries an asset-cert-issue output.
func checkAssetCertIssueTransaction(tx *externalapi.DomainTransaction, chain model.Chain) error {
	var issue *externalapi.DomainTransactionOutput
	var domain *externalapi.DomainTransactionOutput

	for _, output := range tx.Outputs {
		switch {
		case output.IsAssetCertIssue():
			if issue != nil {
				return errors.WithStack(ruleerrors.ErrAssetCertIssueError)
			}
			issue = output
		case output.IsAssetCert():
			if domain != nil {
				return errors.WithStack(ruleerrors.ErrAssetCertIssueError)
			}
			domain = output
		}
	}

	if issue == nil {
		return nil
	}

	cert, _ := issue.AssetCert()
	if chain.IsAssetCertExist(cert.Symbol, cert.CertType) {
		return errors.WithStack(ruleerrors.ErrAssetCertExist)
	}

	if cert.CertType == externalapi.AssetCertTypeNaming {
		if domain == nil {
			return errors.WithStack(ruleerrors.ErrAssetCertIssueError)
		}
		domainCert, _ := domain.AssetCert()
		if domainCert.CertType != externalapi.AssetCertTypeDomain {
			return errors.WithStack(ruleerrors.ErrAssetCertIssueError)
		}
		if domainCert.Symbol != symbol.Domain(cert.Symbol) {
			return errors.WithStack(ruleerrors.ErrAssetCertIssueError)
		}
		did, ok := chain.GetRegisteredDID(domainCert.OwnerDID)
		if !ok {
			return errors.WithStack(ruleerrors.ErrAssetCertIssueError)
		}
		if did.Address != domainCert.Address {
			return errors.WithStack(ruleerrors.ErrAssetCertIssueError)
		}
		if chain.IsAssetExist(cert.Symbol) {
			return errors.WithStack(ruleerrors.ErrAssetExist)
		}
	} else if domain != nil {
		return errors.WithStack(ruleerrors.ErrAssetCertIssueError)
	}

	for _, other := range tx.Outputs {
		switch {
		case other == issue, other == domain:
			continue
		case other.IsETP(), other.IsMessage():
			continue
		default:
			return errors.WithStack(ruleerrors.ErrAssetCertIssueError)
		}
	}

	return nil
}
