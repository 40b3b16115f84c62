package externalapi

// IsETP reports whether the output is a plain value transfer.
func (o *DomainTransactionOutput) IsETP() bool {
	return o.Attachment.Kind() == AttachmentETP
}

// IsMessage reports whether the output carries a text message.
func (o *DomainTransactionOutput) IsMessage() bool {
	return o.Attachment.Kind() == AttachmentMessage
}

// IsAssetIssue reports whether the output declares a brand-new asset.
func (o *DomainTransactionOutput) IsAssetIssue() bool {
	return o.Attachment.Kind() == AttachmentAssetIssue
}

// IsAssetSecondaryIssue reports whether the output tops up an existing
// asset's supply.
func (o *DomainTransactionOutput) IsAssetSecondaryIssue() bool {
	return o.Attachment.Kind() == AttachmentAssetSecondaryIssue
}

// IsAssetTransfer reports whether the output moves already-issued asset
// quantity.
func (o *DomainTransactionOutput) IsAssetTransfer() bool {
	return o.Attachment.Kind() == AttachmentAssetTransfer
}

// IsAsset reports whether the output is any of the three asset variants.
func (o *DomainTransactionOutput) IsAsset() bool {
	return o.IsAssetIssue() || o.IsAssetSecondaryIssue() || o.IsAssetTransfer()
}

// IsAssetCert reports whether the output carries an already-minted
// certificate (passed through or transferred).
func (o *DomainTransactionOutput) IsAssetCert() bool {
	return o.Attachment.Kind() == AttachmentAssetCert
}

// IsAssetCertIssue reports whether the output mints a brand-new
// certificate.
func (o *DomainTransactionOutput) IsAssetCertIssue() bool {
	return o.Attachment.Kind() == AttachmentAssetCertIssue
}

// IsAssetMITRegister reports whether the output mints a new MIT token.
func (o *DomainTransactionOutput) IsAssetMITRegister() bool {
	return o.Attachment.Kind() == AttachmentAssetMITRegister
}

// IsAssetMITTransfer reports whether the output moves an existing MIT
// token.
func (o *DomainTransactionOutput) IsAssetMITTransfer() bool {
	return o.Attachment.Kind() == AttachmentAssetMITTransfer
}

// IsAssetMIT reports whether the output is either MIT variant.
func (o *DomainTransactionOutput) IsAssetMIT() bool {
	return o.IsAssetMITRegister() || o.IsAssetMITTransfer()
}

// IsDIDRegister reports whether the output registers a brand-new DID.
func (o *DomainTransactionOutput) IsDIDRegister() bool {
	return o.Attachment.Kind() == AttachmentDIDRegister
}

// IsDIDTransfer reports whether the output moves an existing DID.
func (o *DomainTransactionOutput) IsDIDTransfer() bool {
	return o.Attachment.Kind() == AttachmentDIDTransfer
}

// IsDID reports whether the output is either DID variant.
func (o *DomainTransactionOutput) IsDID() bool {
	return o.IsDIDRegister() || o.IsDIDTransfer()
}

// AssetDetail returns the output's genesis or top-up declaration, if it
// is an asset-issue or asset-secondary-issue output.
func (o *DomainTransactionOutput) AssetDetail() (AssetDetail, bool) {
	switch p := o.Attachment.Payload.(type) {
	case AssetIssuePayload:
		return p.Detail, true
	case AssetSecondaryIssuePayload:
		return p.Detail, true
	}
	return AssetDetail{}, false
}

// AssetTransfer returns the output's transfer payload, if it is an
// asset-transfer output.
func (o *DomainTransactionOutput) AssetTransfer() (AssetTransferPayload, bool) {
	if p, ok := o.Attachment.Payload.(AssetTransferPayload); ok {
		return p, true
	}
	return AssetTransferPayload{}, false
}

// AssetSymbol returns the symbol carried by an asset-issue,
// asset-secondary-issue or asset-transfer output.
func (o *DomainTransactionOutput) AssetSymbol() string {
	if d, ok := o.AssetDetail(); ok {
		return d.Symbol
	}
	if t, ok := o.AssetTransfer(); ok {
		return t.Symbol
	}
	return ""
}

// AssetAmount returns how much of the asset's total supply this output
// contributes: the declared maximum supply for an issue or secondary-issue
// output, or the transferred quantity for a transfer output.
func (o *DomainTransactionOutput) AssetAmount() (uint64, bool) {
	if d, ok := o.AssetDetail(); ok {
		return d.MaximumSupply, true
	}
	if t, ok := o.AssetTransfer(); ok {
		return t.Quantity, true
	}
	return 0, false
}

// AssetCert returns the certificate carried by an asset-cert or
// asset-cert-issue output.
func (o *DomainTransactionOutput) AssetCert() (AssetCert, bool) {
	switch p := o.Attachment.Payload.(type) {
	case AssetCertPayload:
		return p.Cert, true
	case AssetCertIssuePayload:
		return p.Cert, true
	}
	return AssetCert{}, false
}

// MIT returns the token carried by a mit-register or mit-transfer output.
func (o *DomainTransactionOutput) MIT() (MIT, bool) {
	switch p := o.Attachment.Payload.(type) {
	case AssetMITRegisterPayload:
		return p.MIT, true
	case AssetMITTransferPayload:
		return p.MIT, true
	}
	return MIT{}, false
}

// DID returns the identifier carried by a did-register or did-transfer
// output.
func (o *DomainTransactionOutput) DID() (DID, bool) {
	switch p := o.Attachment.Payload.(type) {
	case DIDRegisterPayload:
		return p.DID, true
	case DIDTransferPayload:
		return p.DID, true
	}
	return DID{}, false
}

// BusinessKind classifies this output for when it is later spent as an
// input.
func (o *DomainTransactionOutput) BusinessKind() BusinessKind {
	return BusinessKindOf(o)
}
