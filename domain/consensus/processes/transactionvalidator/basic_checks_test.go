package transactionvalidator

import (
	"context"
	"testing"

	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
	"github.com/CMakeezer/metaverse/domain/consensus/utils/constants"
)

func etpOutput(value uint64) *externalapi.DomainTransactionOutput {
	return &externalapi.DomainTransactionOutput{Value: value, Attachment: externalapi.Attachment{}}
}

func simpleInput() *externalapi.DomainTransactionInput {
	return &externalapi.DomainTransactionInput{
		PreviousOutpoint: externalapi.DomainOutpoint{Index: 0, TransactionID: externalapi.DomainTransactionID{1}},
	}
}

func TestCheckTransactionBasicEmptyTransaction(t *testing.T) {
	chain := newFakeChain()
	tx := &externalapi.DomainTransaction{}
	err := checkTransactionBasic(context.Background(), tx, chain)
	if err == nil {
		t.Fatal("expected ErrEmptyTransaction for a transaction with no inputs or outputs")
	}
}

func TestCheckTransactionBasicOutputOverflow(t *testing.T) {
	chain := newFakeChain()
	tx := &externalapi.DomainTransaction{
		Inputs:  []*externalapi.DomainTransactionInput{simpleInput()},
		Outputs: []*externalapi.DomainTransactionOutput{etpOutput(constants.MaxMoney), etpOutput(1)},
	}
	err := checkTransactionBasic(context.Background(), tx, chain)
	if err == nil {
		t.Fatal("expected ErrOutputValueOverflow for outputs summing past max_money")
	}
}

func TestCheckTransactionBasicCoinbaseScriptSize(t *testing.T) {
	chain := newFakeChain()
	coinbaseInput := &externalapi.DomainTransactionInput{
		PreviousOutpoint: externalapi.DomainOutpoint{Index: ^uint32(0)},
		SignatureScript:  externalapi.NewScript([]byte{0x01}, externalapi.ScriptPatternCoinbase),
	}
	tx := &externalapi.DomainTransaction{
		Inputs:  []*externalapi.DomainTransactionInput{coinbaseInput},
		Outputs: []*externalapi.DomainTransactionOutput{etpOutput(100)},
	}
	err := checkTransactionBasic(context.Background(), tx, chain)
	if err == nil {
		t.Fatal("expected ErrInvalidCoinbaseScriptSize for a 1-byte coinbase script")
	}
}

func TestCheckTransactionBasicOrdinaryTransactionPasses(t *testing.T) {
	chain := newFakeChain()
	tx := &externalapi.DomainTransaction{
		Inputs:  []*externalapi.DomainTransactionInput{simpleInput()},
		Outputs: []*externalapi.DomainTransactionOutput{etpOutput(100)},
	}
	if err := checkTransactionBasic(context.Background(), tx, chain); err != nil {
		t.Fatalf("unexpected error for an ordinary transaction: %v", err)
	}
}

func TestCheckTransactionBasicNovaTestnetVersionRule(t *testing.T) {
	tx := &externalapi.DomainTransaction{
		Inputs: []*externalapi.DomainTransactionInput{simpleInput()},
		Outputs: []*externalapi.DomainTransactionOutput{{
			Value:  100,
			Script: externalapi.NewScript(nil, externalapi.ScriptPatternPayKeyHash),
		}},
		Version: constants.CheckNovaTestnetVersion,
	}

	mainnet := newFakeChain()
	mainnet.useTestnetRules = false
	if err := checkTransactionBasic(context.Background(), tx, mainnet); err == nil {
		t.Fatal("expected the testnet-only version to be rejected on mainnet")
	}

	testnet := newFakeChain()
	testnet.useTestnetRules = true
	if err := checkTransactionBasic(context.Background(), tx, testnet); err != nil {
		t.Fatalf("expected the testnet-only version to pass on testnet, got: %v", err)
	}
}

func TestIsNovaFeatureActivated(t *testing.T) {
	tests := []struct {
		name            string
		useTestnetRules bool
		lastHeight      uint64
		want            bool
	}{
		{"testnet always active", true, 0, true},
		{"mainnet at activation height", false, constants.NovaFeatureActivationHeight, false},
		{"mainnet above activation height", false, constants.NovaFeatureActivationHeight + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := newFakeChain()
			chain.useTestnetRules = tt.useTestnetRules
			chain.lastHeight = tt.lastHeight
			if got := IsNovaFeatureActivated(chain); got != tt.want {
				t.Errorf("IsNovaFeatureActivated() = %v, want %v", got, tt.want)
			}
		})
	}
}
