package address

import (
	"crypto/sha256"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160"
)

// version is the single-byte network prefix this chain's mainnet
// addresses carry. The validator itself never minds network selection;
// it is consumed only as a pure is-well-formed check (see §1, "address
// encoding consumed as value types with accessors").
const version = 0x32

// Encode derives the base58check address for a public key hash.
func Encode(publicKeyHash [20]byte) string {
	payload := make([]byte, 0, 1+20+4)
	payload = append(payload, version)
	payload = append(payload, publicKeyHash[:]...)
	checksum := checksum(payload)
	payload = append(payload, checksum[:4]...)
	return base58.Encode(payload)
}

// Decode recovers the public key hash from a base58check address,
// rejecting malformed encodings and bad checksums.
func Decode(addr string) ([20]byte, error) {
	var hash [20]byte
	raw, err := base58.Decode(addr)
	if err != nil {
		return hash, errors.Wrap(err, "malformed base58 address")
	}
	if len(raw) != 1+20+4 {
		return hash, errors.Errorf("address %q has unexpected length %d", addr, len(raw))
	}
	payload, sum := raw[:21], raw[21:]
	want := checksum(payload)
	for i := 0; i < 4; i++ {
		if sum[i] != want[i] {
			return hash, errors.Errorf("address %q has invalid checksum", addr)
		}
	}
	copy(hash[:], payload[1:])
	return hash, nil
}

// IsValid reports whether addr is a well-formed address for this chain.
func IsValid(addr string) bool {
	_, err := Decode(addr)
	return err == nil
}

func checksum(payload []byte) [32]byte {
	first := sha256.Sum256(payload)
	return sha256.Sum256(first[:])
}

// Hash160 computes the sha256-then-ripemd160 digest used to derive a
// public key hash from a public key.
func Hash160(publicKey []byte) [20]byte {
	sha := sha256.Sum256(publicKey)
	ripe := ripemd160.New()
	ripe.Write(sha[:])
	var out [20]byte
	copy(out[:], ripe.Sum(nil))
	return out
}
