package mempool

import (
	"context"

	"github.com/CMakeezer/metaverse/domain/consensus/model"
	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
	"github.com/CMakeezer/metaverse/domain/consensus/utils/scriptflags"
)

// fakeChain is a minimal in-memory model.Chain used to drive the
// orchestrator pipeline in tests without a real store.
type fakeChain struct {
	lastHeight      uint64
	useTestnetRules bool
	transactions    map[externalapi.DomainTransactionID]txLocation
	spent           map[externalapi.DomainOutpoint]bool
	existingAssets  map[string]bool
	assetVolumes    map[string]uint64
}

type txLocation struct {
	tx     *externalapi.DomainTransaction
	height uint64
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		transactions:   map[externalapi.DomainTransactionID]txLocation{},
		spent:          map[externalapi.DomainOutpoint]bool{},
		existingAssets: map[string]bool{},
		assetVolumes:   map[string]uint64{},
	}
}

func (c *fakeChain) addConfirmed(hash externalapi.DomainTransactionID, tx *externalapi.DomainTransaction, height uint64) {
	c.transactions[hash] = txLocation{tx: tx, height: height}
}

func (c *fakeChain) FetchTransaction(ctx context.Context, hash externalapi.DomainTransactionID) (*externalapi.DomainTransaction, bool, error) {
	loc, ok := c.transactions[hash]
	if !ok {
		return nil, false, nil
	}
	return loc.tx, true, nil
}

func (c *fakeChain) FetchTransactionIndex(ctx context.Context, hash externalapi.DomainTransactionID) (uint64, bool, error) {
	loc, ok := c.transactions[hash]
	if !ok {
		return 0, false, nil
	}
	return loc.height, true, nil
}

func (c *fakeChain) FetchLastHeight(ctx context.Context) (uint64, error) {
	return c.lastHeight, nil
}

func (c *fakeChain) FetchSpend(ctx context.Context, outpoint externalapi.DomainOutpoint) (model.SpendStatus, error) {
	if c.spent[outpoint] {
		return model.Spent, nil
	}
	return model.Unspent, nil
}

func (c *fakeChain) IsAssetExist(symbol string) bool { return c.existingAssets[symbol] }
func (c *fakeChain) IsDIDExist(symbol string) bool    { return false }
func (c *fakeChain) IsAssetCertExist(symbol string, certType externalapi.AssetCertType) bool {
	return false
}
func (c *fakeChain) GetRegisteredMIT(symbol string) (externalapi.MIT, bool) { return externalapi.MIT{}, false }
func (c *fakeChain) GetRegisteredDID(symbol string) (externalapi.DID, bool) { return externalapi.DID{}, false }
func (c *fakeChain) GetDIDFromAddress(address string) (string, bool)        { return "", false }
func (c *fakeChain) GetAssetVolume(symbol string) uint64                    { return c.assetVolumes[symbol] }
func (c *fakeChain) IsValidAddress(address string) bool                     { return true }
func (c *fakeChain) ChainSettings() model.ChainSettings {
	return model.ChainSettings{UseTestnetRules: c.useTestnetRules}
}
func (c *fakeChain) GetLastHeight() uint64 { return c.lastHeight }

// fakePool is a minimal in-memory model.Pool.
type fakePool struct {
	byHash  map[externalapi.DomainTransactionID]*externalapi.DomainTransaction
	spentBy bool
}

func newFakePool() *fakePool {
	return &fakePool{byHash: map[externalapi.DomainTransactionID]*externalapi.DomainTransaction{}}
}

func (p *fakePool) IsInPool(hash externalapi.DomainTransactionID) bool {
	_, ok := p.byHash[hash]
	return ok
}

func (p *fakePool) Find(hash externalapi.DomainTransactionID) (*externalapi.DomainTransaction, bool) {
	tx, ok := p.byHash[hash]
	return tx, ok
}

func (p *fakePool) IsSpentInPool(tx *externalapi.DomainTransaction) bool {
	return p.spentBy
}

// fakeScriptVerifier returns its configured result for every input,
// standing in for the out-of-scope script interpreter.
type fakeScriptVerifier struct {
	result bool
}

func (v *fakeScriptVerifier) CheckConsensus(prevScript externalapi.Script, tx *externalapi.DomainTransaction, inputIndex int, flags scriptflags.Flags) bool {
	return v.result
}

// fakeTransactionValidator is a stand-in model.TransactionValidator whose
// verdicts are configured directly, isolating orchestrator tests from the
// full check_transaction pipeline.
type fakeTransactionValidator struct {
	preErr  error
	postErr error
}

func (v *fakeTransactionValidator) CheckTransactionPreResolution(ctx context.Context, tx *externalapi.DomainTransaction, chain model.Chain) error {
	return v.preErr
}

func (v *fakeTransactionValidator) CheckTransactionPostResolution(ctx context.Context, tx *externalapi.DomainTransaction, chain model.Chain) error {
	return v.postErr
}
