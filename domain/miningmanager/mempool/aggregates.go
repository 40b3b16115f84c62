package mempool

import "github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"

// aggregates are the running totals one validation pass accumulates as it
// walks a transaction's inputs in order. They are single-owner and
// discarded with the validation run; nothing here is shared across
// concurrent validations.
type aggregates struct {
	valueIn         uint64
	assetAmountIn   uint64
	assetCertsIn    []externalapi.AssetCertType
	oldSymbolIn     string
	newSymbolIn     string
	businessKindIn  externalapi.BusinessKind
	lastBlockHeight uint64

	unconfirmedInputs []int
}

func newAggregates(lastBlockHeight uint64) *aggregates {
	return &aggregates{lastBlockHeight: lastBlockHeight}
}

// latchSymbol records sym as old_symbol_in on the first asset/cert/MIT/DID
// input, and requires every subsequent one to agree, subject to the
// domain-cert relaxation callers apply before calling this.
func (a *aggregates) latchSymbol(sym string) bool {
	a.newSymbolIn = sym
	if a.oldSymbolIn == "" {
		a.oldSymbolIn = sym
		return true
	}
	return a.oldSymbolIn == sym
}

func (a *aggregates) setBusinessKind(kind externalapi.BusinessKind) {
	a.businessKindIn = kind
}
