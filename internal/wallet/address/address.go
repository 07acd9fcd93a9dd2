package address

import (
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// PublicKeyLength is the size of a SEC1 compressed secp256k1 public key.
const PublicKeyLength = 33

var ErrInvalidPublicKey = errors.New("invalid public key")

// PublicKey is the compressed secp256k1 key the signing service derived for
// a caller.
type PublicKey [PublicKeyLength]byte

// PublicKeyFromBytes validates raw key material returned by the signing
// service.
func PublicKeyFromBytes(raw []byte) (PublicKey, error) {
	var pk PublicKey

	if len(raw) != PublicKeyLength {
		return pk, errors.Wrapf(ErrInvalidPublicKey, "expected %d bytes, got %d", PublicKeyLength, len(raw))
	}

	// Rejects points that are not on the curve.
	if _, err := crypto.DecompressPubkey(raw); err != nil {
		return pk, errors.Wrap(ErrInvalidPublicKey, err.Error())
	}

	copy(pk[:], raw)
	return pk, nil
}

// ParsePublicKey decodes the base58 form produced by String.
func ParsePublicKey(s string) (PublicKey, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return PublicKey{}, errors.Wrap(ErrInvalidPublicKey, err.Error())
	}

	return PublicKeyFromBytes(raw)
}

// String is the canonical address form of the key.
func (pk PublicKey) String() string {
	return base58.Encode(pk[:])
}

func (pk PublicKey) Bytes() []byte {
	out := make([]byte, PublicKeyLength)
	copy(out, pk[:])
	return out
}
