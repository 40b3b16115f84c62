package mempool

import (
	"github.com/pkg/errors"

	"github.com/CMakeezer/metaverse/domain/consensus/model"
	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
	"github.com/CMakeezer/metaverse/domain/consensus/utils/constants"
	"github.com/CMakeezer/metaverse/domain/consensus/utils/scriptflags"
	"github.com/CMakeezer/metaverse/domain/consensus/utils/symbol"
)

// connectInput implements the connect_input rule of §4.6: given an input
// and its resolved previous output and parent height, update the running
// aggregates and verify the spending script. Any returned error means the
// input is rejected; the caller attributes it to this input's index.
func (a *aggregates) connectInput(
	tx *externalapi.DomainTransaction,
	inputIndex int,
	parentHeight uint64,
	prevIsCoinbase bool,
	prev *externalapi.UTXOEntry,
	verifier model.ScriptVerifier,
	flags scriptflags.Flags,
	coinbaseMaturity uint64,
) error {
	if prevIsCoinbase && a.lastBlockHeight-parentHeight < coinbaseMaturity {
		return errors.New("coinbase output has not matured")
	}

	prevOutput := prev.Output()

	if err := a.accumulate(prevOutput); err != nil {
		return err
	}

	if prevOutput.IsAsset() && symbol.IsForbidden(a.newSymbolIn) {
		return errors.New("asset symbol is forbidden")
	}

	if !verifier.CheckConsensus(prev.Script, tx, inputIndex, flags) {
		return errors.New("script verification failed")
	}

	newValueIn := a.valueIn + prev.Amount
	if newValueIn < a.valueIn || newValueIn > constants.MaxMoney {
		return errors.New("value_in exceeds max_money")
	}
	a.valueIn = newValueIn

	return nil
}

// accumulate updates the kind-specific aggregates for one resolved
// previous output. It never touches valueIn; that is always added by the
// caller regardless of kind, since every output carries an etp component
// alongside its attachment.
func (a *aggregates) accumulate(prevOutput *externalapi.DomainTransactionOutput) error {
	switch {
	case prevOutput.IsAsset():
		amount, _ := prevOutput.AssetAmount()
		a.assetAmountIn += amount
		if !a.latchSymbol(prevOutput.AssetSymbol()) {
			return errors.New("asset symbol does not match old_symbol_in")
		}
		// Preserved source anomaly (spec §9 open question 1): spending an
		// asset-transfer output sets business_kind_in to did_transfer,
		// not asset_transfer.
		if prevOutput.IsAssetIssue() || prevOutput.IsAssetSecondaryIssue() {
			a.setBusinessKind(externalapi.BusinessKindAssetIssue)
		} else {
			a.setBusinessKind(externalapi.BusinessKindDIDTransfer)
		}

	case prevOutput.IsAssetCert(), prevOutput.IsAssetCertIssue():
		cert, _ := prevOutput.AssetCert()
		if externalapi.CertTypesContain(a.assetCertsIn, cert.CertType) {
			return errors.New("duplicate cert type in asset_certs_in")
		}
		if externalapi.CertTypesContain(a.assetCertsIn, externalapi.AssetCertTypeDomain) {
			if cert.Symbol != symbol.Domain(a.oldSymbolIn) {
				return errors.New("cert symbol does not match domain of old_symbol_in")
			}
		} else if !a.latchSymbol(cert.Symbol) {
			return errors.New("cert symbol does not match old_symbol_in")
		}
		a.assetCertsIn = append(a.assetCertsIn, cert.CertType)
		a.setBusinessKind(externalapi.BusinessKindAssetCert)

	case prevOutput.IsAssetMIT():
		mit, _ := prevOutput.MIT()
		if !a.latchSymbol(mit.Symbol) {
			return errors.New("MIT symbol does not match old_symbol_in")
		}
		a.setBusinessKind(externalapi.BusinessKindAssetMIT)

	case prevOutput.IsDID():
		did, _ := prevOutput.DID()
		if !a.latchSymbol(did.Symbol) {
			return errors.New("DID symbol does not match old_symbol_in")
		}
		if did.Status == externalapi.DIDStatusRegister {
			a.setBusinessKind(externalapi.BusinessKindDIDRegister)
		} else {
			a.setBusinessKind(externalapi.BusinessKindDIDTransfer)
		}
	}

	return nil
}
