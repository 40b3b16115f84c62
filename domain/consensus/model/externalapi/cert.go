package externalapi

// AssetCertType identifies what a certificate attests. A given (symbol,
// type) pair is unique across the whole chain.
type AssetCertType uint32

// Certificate type constants.
const (
	AssetCertTypeNone AssetCertType = iota
	AssetCertTypeIssue
	AssetCertTypeDomain
	AssetCertTypeNaming
)

// AssetCertStatus distinguishes how a certificate output came to exist,
// mirroring the three ways asset_cert can appear on the wire: newly
// minted, passed through unchanged, or moved to a new owner.
type AssetCertStatus uint8

// Certificate status constants.
const (
	AssetCertStatusNormal AssetCertStatus = iota
	AssetCertStatusIssue
	AssetCertStatusTransfer
)

// AssetCert is a certificate attesting ownership rights over a symbol: the
// right to issue the asset itself, the right to issue under a domain, or
// the right to register a name within a domain.
type AssetCert struct {
	Symbol   string
	CertType AssetCertType
	OwnerDID string
	Address  string
	Status   AssetCertStatus
}

// CertTypesContain reports whether have contains want.
func CertTypesContain(have []AssetCertType, want AssetCertType) bool {
	for _, t := range have {
		if t == want {
			return true
		}
	}
	return false
}

// CertTypesSatisfyMask reports whether have is a superset of mask: every
// cert type the mask requires is present in have. Used to check an asset's
// declared CertMask against the certificates actually attached to its
// issuance transaction.
func CertTypesSatisfyMask(have, mask []AssetCertType) bool {
	for _, want := range mask {
		if !CertTypesContain(have, want) {
			return false
		}
	}
	return true
}

// CertTypesEqual reports whether a and b contain the same multiset of cert
// types, ignoring order. Used to check that a transaction's input
// certificates and output certificates agree.
func CertTypesEqual(a, b []AssetCertType) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[AssetCertType]int, len(a))
	for _, t := range a {
		counts[t]++
	}
	for _, t := range b {
		counts[t]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}
