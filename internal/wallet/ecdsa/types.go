package ecdsa

import "github.com/ethereum/go-ethereum/common/hexutil"

// SignCost is the fee in cycles paid with every threshold signature.
const SignCost uint64 = 26_153_846_153

const (
	// DigestLength is the size of a message hash accepted for signing.
	DigestLength = 32
	// SignatureLength is the size of a compact r||s signature.
	SignatureLength = 64
)

type Curve string

const CurveSecp256k1 Curve = "secp256k1"

// KeyID identifies a master key of the signing service.
type KeyID struct {
	Curve Curve  `json:"curve"`
	Name  string `json:"name"`
}

// PublicKeyArgs requests the public key for a key/path pair.
type PublicKeyArgs struct {
	DerivationPath []hexutil.Bytes `json:"derivation_path"`
	KeyID          KeyID           `json:"key_id"`
}

type PublicKeyResponse struct {
	PublicKey hexutil.Bytes `json:"public_key"`
	ChainCode hexutil.Bytes `json:"chain_code"`
}

// SignArgs requests a signature over MessageHash.
type SignArgs struct {
	MessageHash    hexutil.Bytes   `json:"message_hash"`
	DerivationPath []hexutil.Bytes `json:"derivation_path"`
	KeyID          KeyID           `json:"key_id"`
}

type SignResponse struct {
	Signature hexutil.Bytes `json:"signature"`
}
