package transaction

import (
	"crypto/sha256"
	"encoding/base64"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
)

// Transaction is a message plus one signature slot per required signer.
type Transaction struct {
	Signatures []Signature
	Message    Message
}

// New returns an unsigned transaction for msg.
func New(msg Message) *Transaction {
	return &Transaction{Message: msg}
}

// Parse decodes the base64 encoded RLP form produced by Encode.
func Parse(s string) (*Transaction, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "base64: %v", err)
	}

	var tx Transaction
	if err := rlp.DecodeBytes(raw, &tx); err != nil {
		return nil, errors.Wrapf(ErrMalformed, "rlp: %v", err)
	}

	if err := tx.validate(); err != nil {
		return nil, err
	}

	return &tx, nil
}

func (tx *Transaction) validate() error {
	required := int(tx.Message.NumRequiredSignatures)
	if required == 0 {
		return errors.Wrap(ErrMalformed, "transaction requires no signature")
	}

	if n := len(tx.Signatures); n != 0 && n != required {
		return errors.Wrapf(ErrMalformed, "%d signatures for %d required signers", n, required)
	}

	return nil
}

// Encode returns the canonical string form: base64 of the RLP encoding.
func (tx *Transaction) Encode() (string, error) {
	raw, err := rlp.EncodeToBytes(tx)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode transaction")
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

func (tx *Transaction) String() string {
	s, err := tx.Encode()
	if err != nil {
		return ""
	}

	return s
}

// MessageData returns the digest signers sign: SHA-256 of the RLP encoded
// message body. Signatures never contribute to it.
func (tx *Transaction) MessageData() ([sha256.Size]byte, error) {
	raw, err := rlp.EncodeToBytes(&tx.Message)
	if err != nil {
		return [sha256.Size]byte{}, errors.Wrap(err, "failed to encode message")
	}

	return sha256.Sum256(raw), nil
}

// AddSignature stores sig in slot index, allocating the slots of all
// required signers on first use.
func (tx *Transaction) AddSignature(index int, sig Signature) error {
	if required := int(tx.Message.NumRequiredSignatures); len(tx.Signatures) < required {
		slots := make([]Signature, required)
		copy(slots, tx.Signatures)
		tx.Signatures = slots
	}

	if index < 0 || index >= len(tx.Signatures) {
		return errors.Wrapf(ErrSignatureSlot, "index %d, %d slots", index, len(tx.Signatures))
	}

	tx.Signatures[index] = sig
	return nil
}

// IsSigned reports whether every signature slot is filled.
func (tx *Transaction) IsSigned() bool {
	if len(tx.Signatures) == 0 {
		return false
	}

	for _, sig := range tx.Signatures {
		if sig.IsZero() {
			return false
		}
	}

	return true
}
