package transaction

import (
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

const (
	BlockHashLength = 32
	SignatureLength = 64
)

var (
	ErrMalformed              = errors.New("invalid transaction")
	ErrInvalidBlockHash       = errors.New("invalid recent blockhash")
	ErrInvalidSignatureLength = errors.New("invalid signature length")
	ErrSignatureSlot          = errors.New("signature slot out of range")
)

// BlockHash references a recent block. The zero value means "not set".
type BlockHash [BlockHashLength]byte

// ParseBlockHash decodes the base58 form of a block hash.
func ParseBlockHash(s string) (BlockHash, error) {
	var h BlockHash

	raw, err := base58.Decode(s)
	if err != nil {
		return h, errors.Wrapf(ErrInvalidBlockHash, "%q: %v", s, err)
	}

	if len(raw) != BlockHashLength {
		return h, errors.Wrapf(ErrInvalidBlockHash, "%q: expected %d bytes, got %d", s, BlockHashLength, len(raw))
	}

	copy(h[:], raw)
	return h, nil
}

func (h BlockHash) IsZero() bool {
	return h == BlockHash{}
}

func (h BlockHash) String() string {
	return base58.Encode(h[:])
}

// Signature is a compact r||s secp256k1 signature.
type Signature [SignatureLength]byte

// SignatureFromBytes converts raw signer output, which must be exactly
// SignatureLength bytes.
func SignatureFromBytes(raw []byte) (Signature, error) {
	var sig Signature

	if len(raw) != SignatureLength {
		return sig, errors.Wrapf(ErrInvalidSignatureLength, "expected %d bytes, got %d", SignatureLength, len(raw))
	}

	copy(sig[:], raw)
	return sig, nil
}

func (s Signature) IsZero() bool {
	return s == Signature{}
}

func (s Signature) String() string {
	return base58.Encode(s[:])
}

type Coin struct {
	Denom  string
	Amount string
}

type Fee struct {
	Amount   []Coin
	GasLimit uint64
}

// Any is a packed chain message, identified by its type URL.
type Any struct {
	TypeURL string
	Value   []byte
}

// Message is the signed body of a transaction.
type Message struct {
	NumRequiredSignatures uint8
	ChainID               string
	AccountNumber         uint64
	Sequence              uint64
	RecentBlockhash       BlockHash
	Memo                  string
	Fee                   Fee
	Msgs                  []Any
}
