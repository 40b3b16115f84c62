package mempool

import (
	"context"
	"testing"

	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
	"github.com/CMakeezer/metaverse/domain/consensus/ruleerrors"
	"github.com/CMakeezer/metaverse/domain/consensus/utils/consensushashing"
)

func txID(b byte) externalapi.DomainTransactionID {
	var id externalapi.DomainTransactionID
	id[0] = b
	return id
}

func newValidator(chain *fakeChain, pool *fakePool) *Validator {
	return New(chain, pool, &fakeTransactionValidator{}, &fakeScriptVerifier{result: true}, DefaultConfig())
}

func spendingTx(prevHash externalapi.DomainTransactionID, outputValue uint64) *externalapi.DomainTransaction {
	return &externalapi.DomainTransaction{
		Version: 1,
		Inputs: []*externalapi.DomainTransactionInput{
			{PreviousOutpoint: externalapi.DomainOutpoint{TransactionID: prevHash, Index: 0}},
		},
		Outputs: []*externalapi.DomainTransactionOutput{
			{Value: outputValue},
		},
	}
}

// S1: min-fee boundary.
func TestValidateTransactionMinFeeBoundary(t *testing.T) {
	prevHash := txID(1)
	prevTx := &externalapi.DomainTransaction{
		Outputs: []*externalapi.DomainTransactionOutput{{Value: 20000}},
	}

	chain := newFakeChain()
	chain.addConfirmed(prevHash, prevTx, 10)
	chain.lastHeight = 10

	tx := spendingTx(prevHash, 10000)
	v := newValidator(chain, newFakePool())

	result, err := v.ValidateTransaction(context.Background(), tx)
	if err != nil {
		t.Fatalf("unexpected error for a tx paying exactly the minimum fee: %v", err)
	}
	if result == nil {
		t.Fatal("expected a non-nil result on success")
	}

	tx2 := spendingTx(prevHash, 10001)
	_, err = v.ValidateTransaction(context.Background(), tx2)
	if err == nil {
		t.Fatal("expected ErrFeesOutOfRange for a tx paying one unit below the minimum fee")
	}
}

// S2: double spend on chain.
func TestValidateTransactionChainDoubleSpend(t *testing.T) {
	prevHash := txID(2)
	prevTx := &externalapi.DomainTransaction{
		Outputs: []*externalapi.DomainTransactionOutput{{Value: 20000}},
	}

	chain := newFakeChain()
	chain.addConfirmed(prevHash, prevTx, 10)
	chain.lastHeight = 10
	chain.spent[externalapi.DomainOutpoint{TransactionID: prevHash, Index: 0}] = true

	tx := spendingTx(prevHash, 10000)
	v := newValidator(chain, newFakePool())

	_, err := v.ValidateTransaction(context.Background(), tx)
	if err == nil {
		t.Fatal("expected ErrDoubleSpend for a spent outpoint")
	}
}

// S3: input not found.
func TestValidateTransactionInputNotFound(t *testing.T) {
	chain := newFakeChain()
	chain.lastHeight = 10

	tx := spendingTx(txID(99), 1000)
	v := newValidator(chain, newFakePool())

	_, err := v.ValidateTransaction(context.Background(), tx)
	indices := ruleerrors.ExtractInputIndices(err)
	if len(indices) != 1 || indices[0] != 0 {
		t.Fatalf("expected ErrInputNotFound at index 0, got indices %v (err: %v)", indices, err)
	}
}

// S7: coinbase maturity.
func TestValidateTransactionCoinbaseMaturity(t *testing.T) {
	prevHash := txID(7)
	prevTx := &externalapi.DomainTransaction{
		Inputs:  []*externalapi.DomainTransactionInput{{PreviousOutpoint: externalapi.DomainOutpoint{Index: ^uint32(0)}}},
		Outputs: []*externalapi.DomainTransactionOutput{{Value: 20000}},
	}
	parentHeight := uint64(100)

	chain := newFakeChain()
	chain.addConfirmed(prevHash, prevTx, parentHeight)

	pool := newFakePool()
	v := newValidator(chain, pool)
	maturity := v.config.CoinbaseMaturity

	// One short of maturity: rejected.
	chain.lastHeight = parentHeight + maturity - 1
	tx := spendingTx(prevHash, 10000)
	_, err := v.ValidateTransaction(context.Background(), tx)
	if err == nil {
		t.Fatal("expected coinbase spend one block short of maturity to be rejected")
	}

	// Exactly at maturity: accepted.
	chain.lastHeight = parentHeight + maturity
	tx2 := spendingTx(prevHash, 10000)
	_, err = v.ValidateTransaction(context.Background(), tx2)
	if err != nil {
		t.Fatalf("expected coinbase spend at exactly maturity to be accepted, got: %v", err)
	}
}

func TestValidateTransactionRejectsCoinbase(t *testing.T) {
	chain := newFakeChain()
	v := newValidator(chain, newFakePool())
	tx := &externalapi.DomainTransaction{
		Inputs:  []*externalapi.DomainTransactionInput{{PreviousOutpoint: externalapi.DomainOutpoint{Index: ^uint32(0)}}},
		Outputs: []*externalapi.DomainTransactionOutput{{Value: 100}},
	}
	_, err := v.ValidateTransaction(context.Background(), tx)
	if err == nil {
		t.Fatal("expected coinbase transactions to be rejected outright")
	}
}

func TestValidateTransactionPoolDuplicate(t *testing.T) {
	chain := newFakeChain()
	pool := newFakePool()
	tx := spendingTx(txID(1), 100)
	pool.byHash[consensushashing.TransactionID(tx)] = tx // pool the tx under its own hash

	v := newValidator(chain, pool)
	_, err := v.ValidateTransaction(context.Background(), tx)
	if err == nil {
		t.Fatal("expected ErrDuplicate when the exact tx hash is already pooled")
	}
}
