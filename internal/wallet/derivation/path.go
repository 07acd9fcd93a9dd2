package derivation

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github/chapool/cosmos-wallet/internal/auth"
)

// Path is the sequence of byte buffers the threshold signer uses to derive a
// caller specific key from its master key.
type Path [][]byte

// ForCaller returns the one element path owned by the caller: its raw
// principal bytes.
func ForCaller(caller auth.Principal) Path {
	return Path{caller.Bytes()}
}

// Equal reports whether both paths hold identical elements.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}

	for i := range p {
		if !bytes.Equal(p[i], other[i]) {
			return false
		}
	}

	return true
}

// Hex returns the path in its JSON-RPC form.
func (p Path) Hex() []hexutil.Bytes {
	out := make([]hexutil.Bytes, 0, len(p))
	for _, elem := range p {
		out = append(out, hexutil.Bytes(elem))
	}

	return out
}

// FromHex converts a JSON-RPC path back into a Path.
func FromHex(elems []hexutil.Bytes) Path {
	out := make(Path, 0, len(elems))
	for _, elem := range elems {
		out = append(out, []byte(elem))
	}

	return out
}
