package externalapi

import "math/big"

// Sentinel values for AssetDetail.SecondaryIssueThreshold. Any other value
// in [0, 100] is a percentage of currently-owned supply the issuer must
// hold before a secondary issue is admissible.
const (
	// SecondaryIssueForbidden marks an asset whose supply can never be
	// topped up after genesis.
	SecondaryIssueForbidden uint8 = 0xFF

	// SecondaryIssueFreelyIssuable marks an asset whose issuer can issue
	// additional supply at will, with no ownership threshold.
	SecondaryIssueFreelyIssuable uint8 = 0xFE
)

// AssetDetail is the genesis or top-up declaration carried by an
// asset-issue or asset-secondary-issue output.
type AssetDetail struct {
	Symbol                  string
	MaximumSupply           uint64
	Address                 string
	IssuerDID               string
	SecondaryIssueThreshold uint8
	CertMask                []AssetCertType
}

// IsSecondaryIssueThresholdValueOk reports whether the threshold is one of
// the two sentinels or a percentage in [0, 100].
func (d AssetDetail) IsSecondaryIssueThresholdValueOk() bool {
	return d.SecondaryIssueThreshold <= 100 ||
		d.SecondaryIssueThreshold == SecondaryIssueForbidden ||
		d.SecondaryIssueThreshold == SecondaryIssueFreelyIssuable
}

// IsSecondaryIssueForbidden reports whether the asset may never be
// topped up.
func (d AssetDetail) IsSecondaryIssueForbidden() bool {
	return d.SecondaryIssueThreshold == SecondaryIssueForbidden
}

// IsSecondaryIssueFreelyIssuable reports whether the issuer may top up the
// asset's supply with no ownership threshold.
func (d AssetDetail) IsSecondaryIssueFreelyIssuable() bool {
	return d.SecondaryIssueThreshold == SecondaryIssueFreelyIssuable
}

// OwnsEnoughForSecondaryIssue reports whether ownedVolume, out of
// totalVolume currently in circulation, clears the asset's secondary-issue
// threshold. Forbidden assets never clear it; freely-issuable assets
// always do. The comparison is done with big.Int to stay correct at the
// full uint64 range, where ownedVolume*100 can overflow a uint64.
func (d AssetDetail) OwnsEnoughForSecondaryIssue(ownedVolume, totalVolume uint64) bool {
	if d.IsSecondaryIssueForbidden() {
		return false
	}
	if d.IsSecondaryIssueFreelyIssuable() {
		return true
	}
	owned := new(big.Int).Mul(big.NewInt(0).SetUint64(ownedVolume), big.NewInt(100))
	required := new(big.Int).Mul(big.NewInt(0).SetUint64(totalVolume), big.NewInt(int64(d.SecondaryIssueThreshold)))
	return owned.Cmp(required) >= 0
}

// HasCertType reports whether the asset's cert mask requires t.
func (d AssetDetail) HasCertType(t AssetCertType) bool {
	return CertTypesContain(d.CertMask, t)
}
