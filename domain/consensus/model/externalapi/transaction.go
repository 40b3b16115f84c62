package externalapi

import "fmt"

// DomainTransaction represents a transaction candidate for mempool admission.
type DomainTransaction struct {
	Version uint32
	Inputs  []*DomainTransactionInput
	Outputs []*DomainTransactionOutput

	// ID caches the transaction's hash. It is populated lazily by
	// consensushashing.TransactionID and is not part of the wire data.
	id *DomainTransactionID
}

// DomainTransactionInput represents a transaction input: a reference to a
// previous output plus the script that spends it.
type DomainTransactionInput struct {
	PreviousOutpoint DomainOutpoint
	SignatureScript  Script

	// UTXOEntry is populated by the caller that resolves PreviousOutpoint
	// against the chain or the mempool before the input reaches
	// connect_input. It is nil until resolved.
	UTXOEntry *UTXOEntry
}

// DomainOutpoint identifies a previous output by its transaction hash and
// output index.
type DomainOutpoint struct {
	TransactionID DomainTransactionID
	Index         uint32
}

// IsNull reports whether the outpoint is the null outpoint used by coinbase
// inputs (zero hash, max index).
func (o DomainOutpoint) IsNull() bool {
	return o.TransactionID == DomainTransactionID{} && o.Index == ^uint32(0)
}

// String stringifies an outpoint as "hash:index".
func (o DomainOutpoint) String() string {
	return fmt.Sprintf("%s:%d", o.TransactionID, o.Index)
}

// DomainTransactionOutput represents a transaction output: an etp value, a
// locking script, and exactly one attachment variant.
type DomainTransactionOutput struct {
	Value      uint64
	Script     Script
	Attachment Attachment

	// Address is the output's owning address, decoded from Script by the
	// address codec upstream of the validator (see internal/address). It
	// is carried here as a plain accessor rather than derived on demand,
	// matching how the spec treats address encoding as an external concern.
	Address string
}

// DomainTransactionID is the hash identifying a transaction.
type DomainTransactionID [32]byte

// String stringifies a transaction ID as a lowercase hex string.
func (id DomainTransactionID) String() string {
	return fmt.Sprintf("%x", id[:])
}

// SetCachedID caches a previously computed transaction ID on the
// transaction so repeated lookups (duplicate checks, logging) don't
// re-serialize and re-hash it. Used exclusively by consensushashing.
func (tx *DomainTransaction) SetCachedID(id *DomainTransactionID) {
	tx.id = id
}

// CachedID returns the cached transaction ID, if any.
func (tx *DomainTransaction) CachedID() (*DomainTransactionID, bool) {
	if tx.id == nil {
		return nil, false
	}
	return tx.id, true
}

// IsCoinbase reports whether the transaction is a coinbase transaction: it
// has exactly one input, and that input's previous outpoint is null.
func (tx *DomainTransaction) IsCoinbase() bool {
	return len(tx.Inputs) == 1 && tx.Inputs[0].PreviousOutpoint.IsNull()
}

// TotalOutputValue returns the sum of all output values. It does not guard
// against overflow; callers that need an overflow-checked sum should use
// the basic-checks pass, which computes this incrementally with a guard.
func (tx *DomainTransaction) TotalOutputValue() uint64 {
	var total uint64
	for _, output := range tx.Outputs {
		total += output.Value
	}
	return total
}

// TotalOutputTransferAmount returns the sum of asset amounts carried by
// every asset-bearing output (issue, secondary-issue, transfer) in the
// transaction, regardless of symbol. Per-symbol agreement is checked
// separately.
func (tx *DomainTransaction) TotalOutputTransferAmount() uint64 {
	var total uint64
	for _, output := range tx.Outputs {
		if amount, ok := output.AssetAmount(); ok {
			total += amount
		}
	}
	return total
}
