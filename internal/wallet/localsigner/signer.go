// Package localsigner emulates the threshold ECDSA service for local
// development and tests. Keys are derived from a single in-memory seed, so it
// must never hold production funds.
package localsigner

import (
	"context"
	"crypto/sha256"
	"encoding/binary"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
	"github/chapool/cosmos-wallet/internal/wallet/derivation"
	"github/chapool/cosmos-wallet/internal/wallet/ecdsa"
	"github/chapool/cosmos-wallet/internal/wallet/seed"
)

var (
	ErrSeedNotInitialized = errors.New("seed not initialized")
	ErrUnsupportedCurve   = errors.New("unsupported curve")
	ErrInvalidDigest      = errors.New("message hash must be 32 bytes")
	ErrInsufficientCycles = errors.New("insufficient cycles attached to sign request")
)

// Signer implements ecdsa.Client in process.
type Signer struct {
	seedManager seed.Manager
}

func New(seedManager seed.Manager) (*Signer, error) {
	if !seedManager.IsInitialized() {
		return nil, ErrSeedNotInitialized
	}

	return &Signer{seedManager: seedManager}, nil
}

func (s *Signer) PublicKey(_ context.Context, args *ecdsa.PublicKeyArgs) (*ecdsa.PublicKeyResponse, error) {
	key, err := s.deriveKey(args.KeyID, derivation.FromHex(args.DerivationPath))
	if err != nil {
		return nil, err
	}

	pub := key.PublicKey()

	return &ecdsa.PublicKeyResponse{
		PublicKey: pub.Key,
		ChainCode: pub.ChainCode,
	}, nil
}

func (s *Signer) Sign(_ context.Context, args *ecdsa.SignArgs, payment uint64) (*ecdsa.SignResponse, error) {
	if payment < ecdsa.SignCost {
		return nil, errors.Wrapf(ErrInsufficientCycles, "got %d, need %d", payment, ecdsa.SignCost)
	}

	if len(args.MessageHash) != ecdsa.DigestLength {
		return nil, errors.Wrapf(ErrInvalidDigest, "got %d bytes", len(args.MessageHash))
	}

	key, err := s.deriveKey(args.KeyID, derivation.FromHex(args.DerivationPath))
	if err != nil {
		return nil, err
	}

	priv, err := crypto.ToECDSA(key.Key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert derived key")
	}

	sig, err := crypto.Sign(args.MessageHash, priv)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign message hash")
	}

	// drop the recovery id, callers expect compact r||s
	return &ecdsa.SignResponse{Signature: sig[:ecdsa.SignatureLength]}, nil
}

// deriveKey walks from the master key to the key name (hardened) and then
// through every path element, each expanded into eight non-hardened indices.
func (s *Signer) deriveKey(id ecdsa.KeyID, path derivation.Path) (*bip32.Key, error) {
	if id.Curve != ecdsa.CurveSecp256k1 {
		return nil, errors.Wrapf(ErrUnsupportedCurve, "%q", id.Curve)
	}

	seedBytes := s.seedManager.GetSeed()
	if seedBytes == nil {
		return nil, ErrSeedNotInitialized
	}

	master, err := bip32.NewMasterKey(seedBytes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create master key")
	}

	nameHash := sha256.Sum256([]byte(id.Name))
	key, err := master.NewChildKey(binary.BigEndian.Uint32(nameHash[:4]) | bip32.FirstHardenedChild)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to derive key %q", id.Name)
	}

	for _, elem := range path {
		for _, index := range elementIndices(elem) {
			key, err = key.NewChildKey(index)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to derive child key at index %d", index)
			}
		}
	}

	return key, nil
}

func elementIndices(elem []byte) []uint32 {
	const wordSize = 4

	h := sha256.Sum256(elem)
	indices := make([]uint32, 0, len(h)/wordSize)
	for i := 0; i < len(h); i += wordSize {
		indices = append(indices, binary.BigEndian.Uint32(h[i:i+wordSize])&^bip32.FirstHardenedChild)
	}

	return indices
}
