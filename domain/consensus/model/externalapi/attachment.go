package externalapi

// AttachmentKind identifies which of the eleven output payload variants an
// Attachment carries.
type AttachmentKind uint8

// Attachment kind constants, one per output variant named in the data
// model: a plain value transfer, a text message, and the asset, cert,
// MIT and DID operations.
const (
	AttachmentETP AttachmentKind = iota
	AttachmentMessage
	AttachmentAssetIssue
	AttachmentAssetSecondaryIssue
	AttachmentAssetTransfer
	AttachmentAssetCert
	AttachmentAssetCertIssue
	AttachmentAssetMITRegister
	AttachmentAssetMITTransfer
	AttachmentDIDRegister
	AttachmentDIDTransfer
)

// AttachmentPayload is implemented by each of the eleven concrete payload
// types an Attachment can carry.
type AttachmentPayload interface {
	Kind() AttachmentKind
}

// Attachment is the tagged-variant envelope every output carries. Version
// is the wire version of the attachment encoding; FromDID/ToDID are
// populated when the spending parties are DID-addressed, independent of
// which payload the attachment carries.
type Attachment struct {
	Version uint32
	FromDID string
	ToDID   string
	Payload AttachmentPayload
}

// Kind returns the attachment's variant. A nil Payload is treated as a
// plain ETP transfer, matching the wire default.
func (a Attachment) Kind() AttachmentKind {
	if a.Payload == nil {
		return AttachmentETP
	}
	return a.Payload.Kind()
}

// EtpPayload marks a plain value-transfer output. It carries no fields of
// its own; the output's Value field is the transfer amount.
type EtpPayload struct{}

// Kind implements AttachmentPayload.
func (EtpPayload) Kind() AttachmentKind { return AttachmentETP }

// MessagePayload carries an arbitrary text message attached to an output.
type MessagePayload struct {
	Text string
}

// Kind implements AttachmentPayload.
func (MessagePayload) Kind() AttachmentKind { return AttachmentMessage }

// AssetIssuePayload carries the detail of a brand-new asset's genesis
// output.
type AssetIssuePayload struct {
	Detail AssetDetail
}

// Kind implements AttachmentPayload.
func (AssetIssuePayload) Kind() AttachmentKind { return AttachmentAssetIssue }

// AssetSecondaryIssuePayload carries the detail of a top-up to an asset's
// circulating supply, gated by the asset's secondary-issue threshold.
type AssetSecondaryIssuePayload struct {
	Detail AssetDetail
}

// Kind implements AttachmentPayload.
func (AssetSecondaryIssuePayload) Kind() AttachmentKind { return AttachmentAssetSecondaryIssue }

// AssetTransferPayload moves a quantity of an already-issued asset.
type AssetTransferPayload struct {
	Symbol   string
	Quantity uint64
}

// Kind implements AttachmentPayload.
func (AssetTransferPayload) Kind() AttachmentKind { return AttachmentAssetTransfer }

// AssetCertPayload carries an already-minted certificate: either passed
// along unchanged (a companion proof for an asset issue) or moved to a new
// owner (a certificate transfer).
type AssetCertPayload struct {
	Cert AssetCert
}

// Kind implements AttachmentPayload.
func (AssetCertPayload) Kind() AttachmentKind { return AttachmentAssetCert }

// AssetCertIssuePayload mints a brand-new certificate.
type AssetCertIssuePayload struct {
	Cert AssetCert
}

// Kind implements AttachmentPayload.
func (AssetCertIssuePayload) Kind() AttachmentKind { return AttachmentAssetCertIssue }

// AssetMITRegisterPayload mints a brand-new non-fungible MIT token.
type AssetMITRegisterPayload struct {
	MIT MIT
}

// Kind implements AttachmentPayload.
func (AssetMITRegisterPayload) Kind() AttachmentKind { return AttachmentAssetMITRegister }

// AssetMITTransferPayload moves an existing MIT token to a new owner.
type AssetMITTransferPayload struct {
	MIT MIT
}

// Kind implements AttachmentPayload.
func (AssetMITTransferPayload) Kind() AttachmentKind { return AttachmentAssetMITTransfer }

// DIDRegisterPayload registers a brand-new DID.
type DIDRegisterPayload struct {
	DID DID
}

// Kind implements AttachmentPayload.
func (DIDRegisterPayload) Kind() AttachmentKind { return AttachmentDIDRegister }

// DIDTransferPayload moves an existing DID to a new owning address.
type DIDTransferPayload struct {
	DID DID
}

// Kind implements AttachmentPayload.
func (DIDTransferPayload) Kind() AttachmentKind { return AttachmentDIDTransfer }
