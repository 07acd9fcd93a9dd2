package auth

import (
	"bytes"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// anonymousTag is the single byte identifying the anonymous principal.
const anonymousTag byte = 0x04

// maxPrincipalLength bounds the raw size of a principal.
const maxPrincipalLength = 29

var (
	ErrAnonymousCaller  = errors.New("anonymous caller not allowed")
	ErrInvalidPrincipal = errors.New("invalid principal")
)

// Principal is the opaque identity of the party invoking the wallet.
type Principal []byte

// Anonymous is the distinguished identity of unauthenticated callers.
var Anonymous = Principal{anonymousTag}

// ParsePrincipal decodes the base58 text form of a principal.
func ParsePrincipal(s string) (Principal, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPrincipal, "failed to decode %q: %v", s, err)
	}

	if len(raw) == 0 || len(raw) > maxPrincipalLength {
		return nil, errors.Wrapf(ErrInvalidPrincipal, "unexpected length %d", len(raw))
	}

	return Principal(raw), nil
}

// IsAnonymous reports whether p carries no usable identity.
func (p Principal) IsAnonymous() bool {
	return len(p) == 0 || bytes.Equal(p, Anonymous)
}

// Bytes returns a copy of the raw principal bytes.
func (p Principal) Bytes() []byte {
	out := make([]byte, len(p))
	copy(out, p)
	return out
}

// Equal reports whether both principals carry the same bytes.
func (p Principal) Equal(other Principal) bool {
	return bytes.Equal(p, other)
}

func (p Principal) String() string {
	return base58.Encode(p)
}

// ValidateNotAnonymous returns ErrAnonymousCaller for anonymous principals.
func ValidateNotAnonymous(p Principal) error {
	if p.IsAnonymous() {
		return ErrAnonymousCaller
	}

	return nil
}
