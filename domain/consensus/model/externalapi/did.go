package externalapi

// DIDStatus distinguishes a DID's register output from its transfer
// output.
type DIDStatus uint8

// DID status constants.
const (
	DIDStatusRegister DIDStatus = iota
	DIDStatusTransfer
)

// DID is a decentralized identifier bound to an owning address.
type DID struct {
	Symbol  string
	Address string
	Status  DIDStatus
}
