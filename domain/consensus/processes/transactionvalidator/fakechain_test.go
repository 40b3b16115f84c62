package transactionvalidator

import (
	"context"

	"github.com/CMakeezer/metaverse/domain/consensus/model"
	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
)

// fakeChain is a minimal in-memory model.Chain for exercising the basic
// and per-feature checks without a real store.
type fakeChain struct {
	lastHeight      uint64
	useTestnetRules bool
	existingAssets  map[string]bool
	existingDIDs    map[string]bool
	registeredDIDs  map[string]externalapi.DID
	assetVolumes    map[string]uint64
	validAddresses  map[string]bool
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		existingAssets: map[string]bool{},
		existingDIDs:   map[string]bool{},
		registeredDIDs: map[string]externalapi.DID{},
		assetVolumes:   map[string]uint64{},
		validAddresses: map[string]bool{},
	}
}

func (c *fakeChain) FetchTransaction(ctx context.Context, hash externalapi.DomainTransactionID) (*externalapi.DomainTransaction, bool, error) {
	return nil, false, nil
}

func (c *fakeChain) FetchTransactionIndex(ctx context.Context, hash externalapi.DomainTransactionID) (uint64, bool, error) {
	return 0, false, nil
}

func (c *fakeChain) FetchLastHeight(ctx context.Context) (uint64, error) {
	return c.lastHeight, nil
}

func (c *fakeChain) FetchSpend(ctx context.Context, outpoint externalapi.DomainOutpoint) (model.SpendStatus, error) {
	return model.Unspent, nil
}

func (c *fakeChain) IsAssetExist(symbol string) bool {
	return c.existingAssets[symbol]
}

func (c *fakeChain) IsDIDExist(symbol string) bool {
	return c.existingDIDs[symbol]
}

func (c *fakeChain) IsAssetCertExist(symbol string, certType externalapi.AssetCertType) bool {
	return false
}

func (c *fakeChain) GetRegisteredMIT(symbol string) (externalapi.MIT, bool) {
	return externalapi.MIT{}, false
}

func (c *fakeChain) GetRegisteredDID(symbol string) (externalapi.DID, bool) {
	did, ok := c.registeredDIDs[symbol]
	return did, ok
}

func (c *fakeChain) GetDIDFromAddress(address string) (string, bool) {
	for sym, did := range c.registeredDIDs {
		if did.Address == address {
			return sym, true
		}
	}
	return "", false
}

func (c *fakeChain) GetAssetVolume(symbol string) uint64 {
	return c.assetVolumes[symbol]
}

func (c *fakeChain) IsValidAddress(address string) bool {
	return c.validAddresses[address]
}

func (c *fakeChain) ChainSettings() model.ChainSettings {
	return model.ChainSettings{UseTestnetRules: c.useTestnetRules}
}

func (c *fakeChain) GetLastHeight() uint64 {
	return c.lastHeight
}
