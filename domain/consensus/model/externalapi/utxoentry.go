package externalapi

// UTXOEntry is the resolved previous output an input spends: everything
// connect_input needs about it without walking back to the transaction
// that created it. It is populated by whichever store answers the lookup
// (confirmed-chain UTXO set or mempool-spent-output index; see model.Chain
// and model.Pool) before the input reaches the per-input checks.
type UTXOEntry struct {
	Amount          uint64
	Script          Script
	Attachment      Attachment
	Address         string
	BlockDAAScore   uint64
	IsCoinbase      bool
	IsFromUnconfirmed bool
}

// Output reconstructs the DomainTransactionOutput this entry was resolved
// from, for code that wants to reuse the output-level accessor methods
// (AssetDetail, AssetTransfer, AssetCert, MIT, DID, business-kind
// predicates) against a previous output instead of a fresh one.
func (e *UTXOEntry) Output() *DomainTransactionOutput {
	return &DomainTransactionOutput{
		Value:      e.Amount,
		Script:     e.Script,
		Attachment: e.Attachment,
		Address:    e.Address,
	}
}
