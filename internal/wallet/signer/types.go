package signer

import (
	"context"

	"github/chapool/cosmos-wallet/internal/wallet/derivation"
	"github/chapool/cosmos-wallet/internal/wallet/ecdsa"
)

// Service is the signing protocol client: it asks the threshold signing
// service for public keys and signatures bound to a derivation path.
type Service interface {
	// PublicKey fetches the public key material for key and path.
	PublicKey(ctx context.Context, key ecdsa.Key, path derivation.Path) ([]byte, error)

	// SignDigest pays the signing fee and requests a signature over digest.
	SignDigest(ctx context.Context, key ecdsa.Key, path derivation.Path, digest [ecdsa.DigestLength]byte) ([]byte, error)
}
