package constants

// MinTransactionFee is the minimum fee, in etp units, every admitted
// transaction must pay. Consensus-critical; bit-exact with the source.
const MinTransactionFee = 10000

// MaxTransactionSize is the maximum serialized size, in bytes, of an
// admissible transaction.
const MaxTransactionSize = 1000000

// MaxMoney is the maximum representable etp value, used to bound output
// sums, input sums, and fee totals against overflow.
const MaxMoney = 1<<63 - 1

// NovaFeatureActivationHeight is the mainnet height above which
// nova-gated consensus rules take effect. Testnet always has them active.
const NovaFeatureActivationHeight = 1270000

// CoinbaseScriptMinSize and CoinbaseScriptMaxSize bound a coinbase
// input's signature script length.
const (
	CoinbaseScriptMinSize = 2
	CoinbaseScriptMaxSize = 100
)

// Transaction version thresholds that gate version-conditional rules in
// the basic checks.
const (
	// MaxTransactionVersion is the upper bound on the version field;
	// versions above this are rejected outright. CheckNovaTestnetVersion
	// sits at this bound deliberately, so the testnet-only rule below
	// still gets a chance to run before the outright-reject check would
	// otherwise shadow it.
	MaxTransactionVersion = 5

	// CheckNovaFeatureVersion is the version at and above which
	// nova-gated rules (attachment validity, attenuation params, cert
	// mask enforcement) apply.
	CheckNovaFeatureVersion = 4

	// CheckNovaTestnetVersion is reserved for testnet-only experimental
	// rules; rejected outright on mainnet.
	CheckNovaTestnetVersion = 5

	// CheckOutputScriptVersion is the version at and above which every
	// output script pattern must be recognized (non-standard rejected).
	CheckOutputScriptVersion = 3
)
