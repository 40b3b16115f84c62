package mempool

import (
	"github.com/pkg/errors"

	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
	"github.com/CMakeezer/metaverse/domain/consensus/ruleerrors"
)

// checkAssetConservation implements §4.6 step 8: the per-business-kind
// conservation checks run once every input has been resolved and
// accumulated.
func checkAssetConservation(tx *externalapi.DomainTransaction, a *aggregates) error {
	switch a.businessKindIn {
	case externalapi.BusinessKindAssetIssue, externalapi.BusinessKindAssetTransfer:
		if err := checkAssetAmount(tx, a); err != nil {
			return err
		}
		return checkAssetSymbol(tx, a)
	case externalapi.BusinessKindAssetCert:
		return checkAssetCerts(tx, a)
	case externalapi.BusinessKindAssetMIT:
		return checkAssetMIT(tx, a)
	case externalapi.BusinessKindDIDRegister, externalapi.BusinessKindDIDTransfer:
		return checkDIDSymbolMatch(tx, a)
	}
	return nil
}

func checkAssetAmount(tx *externalapi.DomainTransaction, a *aggregates) error {
	if a.assetAmountIn != tx.TotalOutputTransferAmount() {
		return errors.WithStack(ruleerrors.ErrAssetAmountNotEqual)
	}
	return nil
}

func checkAssetSymbol(tx *externalapi.DomainTransaction, a *aggregates) error {
	for _, output := range tx.Outputs {
		if !output.IsAsset() {
			continue
		}
		if output.AssetSymbol() != a.oldSymbolIn {
			return errors.WithStack(ruleerrors.ErrAssetSymbolNotMatch)
		}
	}
	return nil
}

// checkAssetCerts implements invariant #3: the output cert multiset must
// equal the input cert multiset. When the input set holds a domain cert
// the rule is relaxed: the outputs must carry at least every input cert
// type, and further output certs are accepted whatever their type or
// symbol.
func checkAssetCerts(tx *externalapi.DomainTransaction, a *aggregates) error {
	var outCerts []externalapi.AssetCertType
	for _, output := range tx.Outputs {
		if !output.IsAssetCert() {
			continue
		}
		c, _ := output.AssetCert()
		outCerts = append(outCerts, c.CertType)
	}

	if externalapi.CertTypesContain(a.assetCertsIn, externalapi.AssetCertTypeDomain) {
		if !externalapi.CertTypesSatisfyMask(outCerts, a.assetCertsIn) {
			return errors.WithStack(ruleerrors.ErrAssetCertError)
		}
		return nil
	}

	if !externalapi.CertTypesEqual(a.assetCertsIn, outCerts) {
		return errors.WithStack(ruleerrors.ErrAssetCertError)
	}
	return nil
}

func checkAssetMIT(tx *externalapi.DomainTransaction, a *aggregates) error {
	var transfers int
	for _, output := range tx.Outputs {
		if !output.IsAssetMITTransfer() {
			continue
		}
		mit, _ := output.MIT()
		if mit.Symbol != a.oldSymbolIn {
			return errors.WithStack(ruleerrors.ErrMITError)
		}
		transfers++
	}
	if transfers != 1 {
		return errors.WithStack(ruleerrors.ErrMITError)
	}
	return nil
}

func checkDIDSymbolMatch(tx *externalapi.DomainTransaction, a *aggregates) error {
	for _, output := range tx.Outputs {
		if !output.IsDID() {
			continue
		}
		did, _ := output.DID()
		if did.Symbol != a.oldSymbolIn {
			return errors.WithStack(ruleerrors.ErrDIDSymbolNotMatch)
		}
	}
	return nil
}
