package model

import (
	"context"

	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
)

// SpendStatus reports what fetch_spend found at an outpoint.
type SpendStatus uint8

// Spend status constants.
const (
	// Unspent means no confirmed transaction spends the outpoint.
	Unspent SpendStatus = iota
	// Spent means a confirmed transaction already spends the outpoint.
	Spent
)

// ChainSettings exposes chain-wide configuration the validator consults.
type ChainSettings struct {
	UseTestnetRules bool
}

// Chain is the read-only confirmed-chain storage interface the validator
// depends on. Every Fetch method takes a context and may block: on the
// confirmed chain this models the cost of an index or disk lookup. The
// validator never writes through this interface.
type Chain interface {
	// FetchTransaction looks up a transaction by hash. ok is false if no
	// confirmed transaction with that hash exists.
	FetchTransaction(ctx context.Context, hash externalapi.DomainTransactionID) (tx *externalapi.DomainTransaction, ok bool, err error)

	// FetchTransactionIndex looks up the confirming block height of a
	// transaction by hash. ok is false if no confirmed transaction with
	// that hash exists.
	FetchTransactionIndex(ctx context.Context, hash externalapi.DomainTransactionID) (parentHeight uint64, ok bool, err error)

	// FetchLastHeight returns the height of the most recently confirmed
	// block.
	FetchLastHeight(ctx context.Context) (height uint64, err error)

	// FetchSpend reports whether outpoint is already spent by a
	// confirmed transaction.
	FetchSpend(ctx context.Context, outpoint externalapi.DomainOutpoint) (status SpendStatus, err error)

	// IsAssetExist reports whether an asset with this symbol has already
	// been issued on the confirmed chain.
	IsAssetExist(symbol string) bool

	// IsDIDExist reports whether a DID with this symbol is already
	// registered on the confirmed chain.
	IsDIDExist(symbol string) bool

	// IsAssetCertExist reports whether a certificate of this
	// (symbol, certType) already exists on the confirmed chain.
	IsAssetCertExist(symbol string, certType externalapi.AssetCertType) bool

	// GetRegisteredMIT returns the MIT token registered under symbol, if
	// any.
	GetRegisteredMIT(symbol string) (mit externalapi.MIT, ok bool)

	// GetRegisteredDID returns the DID registered under symbol, if any.
	GetRegisteredDID(symbol string) (did externalapi.DID, ok bool)

	// GetDIDFromAddress returns the DID symbol bound to address, if any.
	GetDIDFromAddress(address string) (symbol string, ok bool)

	// GetAssetVolume returns the accumulated circulating supply of
	// symbol on the confirmed chain.
	GetAssetVolume(symbol string) uint64

	// IsValidAddress reports whether address is well-formed under the
	// chain's address encoding.
	IsValidAddress(address string) bool

	// ChainSettings returns the chain's static settings.
	ChainSettings() ChainSettings

	// GetLastHeight is the synchronous counterpart of FetchLastHeight,
	// used by checks that already hold a context-free read path (nova
	// activation, input lock-height checks).
	GetLastHeight() uint64
}
