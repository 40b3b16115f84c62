package consensushashing

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/CMakeezer/metaverse/domain/consensus/model/externalapi"
)

// TransactionID computes tx's ID, caching it on tx so repeated lookups
// (duplicate checks, logging, error indices) don't re-serialize and
// re-hash it.
func TransactionID(tx *externalapi.DomainTransaction) externalapi.DomainTransactionID {
	if id, ok := tx.CachedID(); ok {
		return *id
	}
	id := hashTransaction(tx)
	tx.SetCachedID(&id)
	return id
}

func hashTransaction(tx *externalapi.DomainTransaction) externalapi.DomainTransactionID {
	h := sha256.New()

	var versionBuf [4]byte
	binary.LittleEndian.PutUint32(versionBuf[:], tx.Version)
	h.Write(versionBuf[:])

	for _, input := range tx.Inputs {
		h.Write(input.PreviousOutpoint.TransactionID[:])
		var indexBuf [4]byte
		binary.LittleEndian.PutUint32(indexBuf[:], input.PreviousOutpoint.Index)
		h.Write(indexBuf[:])
		h.Write(input.SignatureScript.Raw)
	}

	for _, output := range tx.Outputs {
		var valueBuf [8]byte
		binary.LittleEndian.PutUint64(valueBuf[:], output.Value)
		h.Write(valueBuf[:])
		h.Write(output.Script.Raw)
	}

	sum := sha256.Sum256(h.Sum(nil))
	var id externalapi.DomainTransactionID
	copy(id[:], sum[:])
	return id
}
