package model

import (
	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
	"github.com/CMakeezer/metaverse/domain/consensus/utils/scriptflags"
)

// ScriptVerifier runs the consensus script interpreter. It is the sole
// adapter to the script execution engine, an external collaborator this
// module never implements.
type ScriptVerifier interface {
	// CheckConsensus reports whether tx's input at inputIndex correctly
	// spends prevScript under the given verification flags.
	CheckConsensus(prevScript externalapi.Script, tx *externalapi.DomainTransaction, inputIndex int, flags scriptflags.Flags) bool
}
