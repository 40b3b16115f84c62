package transactionvalidator

import (
	"testing"

	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
	"github.com/CMakeezer/metaverse/internal/address"
)

func validTestAddress(seed byte) string {
	var hash [20]byte
	hash[0] = seed
	return address.Encode(hash)
}

func didOutput(did externalapi.DID, addr string) *externalapi.DomainTransactionOutput {
	payload := externalapi.DIDRegisterPayload{DID: did}
	var attachmentPayload externalapi.AttachmentPayload = payload
	if did.Status == externalapi.DIDStatusTransfer {
		attachmentPayload = externalapi.DIDTransferPayload{DID: did}
	}
	return &externalapi.DomainTransactionOutput{
		Address:    addr,
		Attachment: externalapi.Attachment{Payload: attachmentPayload},
	}
}

func TestCheckDIDAddressAttachmentsRejectsMalformedAddress(t *testing.T) {
	chain := newFakeChain()
	tx := &externalapi.DomainTransaction{
		Outputs: []*externalapi.DomainTransactionOutput{
			didOutput(externalapi.DID{Symbol: "did:example", Status: externalapi.DIDStatusRegister}, "not-a-real-address"),
		},
	}
	if err := checkDIDAddressAttachments(tx, chain); err == nil {
		t.Fatal("expected a malformed attached address to be rejected")
	}
}

func TestCheckDIDAddressAttachmentsAcceptsWellFormedAddress(t *testing.T) {
	chain := newFakeChain()
	tx := &externalapi.DomainTransaction{
		Outputs: []*externalapi.DomainTransactionOutput{
			didOutput(externalapi.DID{Symbol: "did:example", Status: externalapi.DIDStatusRegister}, validTestAddress(1)),
		},
	}
	if err := checkDIDAddressAttachments(tx, chain); err != nil {
		t.Fatalf("unexpected error for a well-formed attached address: %v", err)
	}
}
