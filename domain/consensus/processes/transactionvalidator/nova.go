package transactionvalidator

import (
	"github.com/CMakeezer/metaverse/domain/consensus/model"
	"github.com/CMakeezer/metaverse/domain/consensus/utils/constants"
)

// IsNovaFeatureActivated reports whether the nova-gated consensus rules
// are in effect: always on testnet, and on mainnet once the confirmed
// chain height passes the fixed activation height.
func IsNovaFeatureActivated(chain model.Chain) bool {
	if chain.ChainSettings().UseTestnetRules {
		return true
	}
	return chain.GetLastHeight() > constants.NovaFeatureActivationHeight
}
