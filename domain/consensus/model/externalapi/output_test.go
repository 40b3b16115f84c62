package externalapi

import "testing"

func TestOutputKindPredicatesPartition(t *testing.T) {
	outputs := []*DomainTransactionOutput{
		{Attachment: Attachment{}},
		{Attachment: Attachment{Payload: MessagePayload{Text: "hi"}}},
		{Attachment: Attachment{Payload: AssetIssuePayload{Detail: AssetDetail{Symbol: "FOO"}}}},
		{Attachment: Attachment{Payload: AssetSecondaryIssuePayload{Detail: AssetDetail{Symbol: "FOO"}}}},
		{Attachment: Attachment{Payload: AssetTransferPayload{Symbol: "FOO", Quantity: 1}}},
		{Attachment: Attachment{Payload: AssetCertPayload{Cert: AssetCert{Symbol: "FOO"}}}},
		{Attachment: Attachment{Payload: AssetCertIssuePayload{Cert: AssetCert{Symbol: "FOO"}}}},
		{Attachment: Attachment{Payload: AssetMITRegisterPayload{MIT: MIT{Symbol: "FOO"}}}},
		{Attachment: Attachment{Payload: AssetMITTransferPayload{MIT: MIT{Symbol: "FOO"}}}},
		{Attachment: Attachment{Payload: DIDRegisterPayload{DID: DID{Symbol: "FOO"}}}},
		{Attachment: Attachment{Payload: DIDTransferPayload{DID: DID{Symbol: "FOO"}}}},
	}

	predicates := []func(*DomainTransactionOutput) bool{
		(*DomainTransactionOutput).IsETP,
		(*DomainTransactionOutput).IsMessage,
		(*DomainTransactionOutput).IsAssetIssue,
		(*DomainTransactionOutput).IsAssetSecondaryIssue,
		(*DomainTransactionOutput).IsAssetTransfer,
		(*DomainTransactionOutput).IsAssetCert,
		(*DomainTransactionOutput).IsAssetCertIssue,
		(*DomainTransactionOutput).IsAssetMITRegister,
		(*DomainTransactionOutput).IsAssetMITTransfer,
		(*DomainTransactionOutput).IsDIDRegister,
		(*DomainTransactionOutput).IsDIDTransfer,
	}

	for i, output := range outputs {
		matches := 0
		for j, pred := range predicates {
			if pred(output) {
				matches++
				if j != i {
					t.Errorf("output %d unexpectedly matched predicate %d", i, j)
				}
			}
		}
		if matches != 1 {
			t.Errorf("output %d matched %d predicates, want exactly 1", i, matches)
		}
	}
}

func TestAssetAmount(t *testing.T) {
	issue := &DomainTransactionOutput{Attachment: Attachment{Payload: AssetIssuePayload{Detail: AssetDetail{Symbol: "FOO", MaximumSupply: 500}}}}
	if amount, ok := issue.AssetAmount(); !ok || amount != 500 {
		t.Errorf("issue.AssetAmount() = (%d, %v), want (500, true)", amount, ok)
	}

	transfer := &DomainTransactionOutput{Attachment: Attachment{Payload: AssetTransferPayload{Symbol: "FOO", Quantity: 42}}}
	if amount, ok := transfer.AssetAmount(); !ok || amount != 42 {
		t.Errorf("transfer.AssetAmount() = (%d, %v), want (42, true)", amount, ok)
	}

	etp := &DomainTransactionOutput{Attachment: Attachment{}}
	if _, ok := etp.AssetAmount(); ok {
		t.Error("etp output unexpectedly reported an asset amount")
	}
}

func TestTotalOutputTransferAmount(t *testing.T) {
	tx := &DomainTransaction{
		Outputs: []*DomainTransactionOutput{
			{Value: 100, Attachment: Attachment{}},
			{Attachment: Attachment{Payload: AssetIssuePayload{Detail: AssetDetail{Symbol: "FOO", MaximumSupply: 1000}}}},
			{Attachment: Attachment{Payload: AssetTransferPayload{Symbol: "FOO", Quantity: 300}}},
		},
	}
	if got := tx.TotalOutputTransferAmount(); got != 1300 {
		t.Errorf("TotalOutputTransferAmount() = %d, want 1300", got)
	}
}

func TestOutpointIsNull(t *testing.T) {
	null := DomainOutpoint{Index: ^uint32(0)}
	if !null.IsNull() {
		t.Error("expected null outpoint to report IsNull")
	}
	nonNull := DomainOutpoint{Index: 0}
	if nonNull.IsNull() {
		t.Error("expected non-null outpoint to not report IsNull")
	}
}
