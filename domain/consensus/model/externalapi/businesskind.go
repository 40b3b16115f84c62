package externalapi

// BusinessKind classifies what kind of value a previous output contributed
// when it is spent as an input. connect_input latches it into the running
// aggregates, and it selects which conservation check runs once every
// input has been connected.
type BusinessKind uint8

// Business kind constants.
const (
	BusinessKindETP BusinessKind = iota
	BusinessKindAssetIssue
	BusinessKindAssetTransfer
	BusinessKindAssetCert
	BusinessKindAssetMIT
	BusinessKindDIDRegister
	BusinessKindDIDTransfer
)

// BusinessKindOf classifies an output by the business it represents when
// later spent as an input.
func BusinessKindOf(output *DomainTransactionOutput) BusinessKind {
	switch {
	case output.IsAssetIssue(), output.IsAssetSecondaryIssue():
		return BusinessKindAssetIssue
	case output.IsAssetTransfer():
		return BusinessKindAssetTransfer
	case output.IsAssetCert(), output.IsAssetCertIssue():
		return BusinessKindAssetCert
	case output.IsAssetMIT():
		return BusinessKindAssetMIT
	case output.IsDIDRegister():
		return BusinessKindDIDRegister
	case output.IsDIDTransfer():
		return BusinessKindDIDTransfer
	default:
		return BusinessKindETP
	}
}
