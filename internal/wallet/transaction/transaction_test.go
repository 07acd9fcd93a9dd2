package transaction_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/cosmos-wallet/internal/wallet/transaction"
)

func testMessage() transaction.Message {
	return transaction.Message{
		NumRequiredSignatures: 1,
		ChainID:               "neutron-1",
		AccountNumber:         42,
		Sequence:              7,
		Memo:                  "hello",
		Fee: transaction.Fee{
			Amount:   []transaction.Coin{{Denom: "untrn", Amount: "5000"}},
			GasLimit: 200_000,
		},
		Msgs: []transaction.Any{
			{TypeURL: "/cosmos.bank.v1beta1.MsgSend", Value: []byte{0x0a, 0x01}},
		},
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	tx := transaction.New(testMessage())

	encoded, err := tx.Encode()
	require.NoError(t, err)

	parsed, err := transaction.Parse(encoded)
	require.NoError(t, err)
	assert.Equal(t, tx.Message.ChainID, parsed.Message.ChainID)
	assert.Equal(t, tx.Message.Sequence, parsed.Message.Sequence)
	assert.True(t, parsed.Message.RecentBlockhash.IsZero())
	assert.Empty(t, parsed.Signatures)

	again, err := parsed.Encode()
	require.NoError(t, err)
	assert.Equal(t, encoded, again)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := transaction.Parse("%%%")
	require.ErrorIs(t, err, transaction.ErrMalformed)

	_, err = transaction.Parse(base64.StdEncoding.EncodeToString([]byte{0xc0, 0x01}))
	require.ErrorIs(t, err, transaction.ErrMalformed)
}

func TestParseRejectsNoSigners(t *testing.T) {
	msg := testMessage()
	msg.NumRequiredSignatures = 0

	encoded, err := transaction.New(msg).Encode()
	require.NoError(t, err)

	_, err = transaction.Parse(encoded)
	require.ErrorIs(t, err, transaction.ErrMalformed)
}

func TestParseRejectsSignatureCountMismatch(t *testing.T) {
	tx := transaction.New(testMessage())
	tx.Signatures = make([]transaction.Signature, 2)

	encoded, err := tx.Encode()
	require.NoError(t, err)

	_, err = transaction.Parse(encoded)
	require.ErrorIs(t, err, transaction.ErrMalformed)
}

func TestMessageDataIgnoresSignatures(t *testing.T) {
	tx := transaction.New(testMessage())
	before, err := tx.MessageData()
	require.NoError(t, err)

	var sig transaction.Signature
	sig[0] = 0x01
	require.NoError(t, tx.AddSignature(0, sig))

	after, err := tx.MessageData()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMessageDataCoversBlockhash(t *testing.T) {
	tx := transaction.New(testMessage())
	before, err := tx.MessageData()
	require.NoError(t, err)

	tx.Message.RecentBlockhash[0] = 0x01
	after, err := tx.MessageData()
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}

func TestAddSignature(t *testing.T) {
	msg := testMessage()
	msg.NumRequiredSignatures = 2
	tx := transaction.New(msg)

	var sig transaction.Signature
	sig[63] = 0xff

	require.NoError(t, tx.AddSignature(0, sig))
	require.Len(t, tx.Signatures, 2)
	assert.Equal(t, sig, tx.Signatures[0])
	assert.True(t, tx.Signatures[1].IsZero())
	assert.False(t, tx.IsSigned())

	require.ErrorIs(t, tx.AddSignature(2, sig), transaction.ErrSignatureSlot)
	require.ErrorIs(t, tx.AddSignature(-1, sig), transaction.ErrSignatureSlot)

	require.NoError(t, tx.AddSignature(1, sig))
	assert.True(t, tx.IsSigned())
}

func TestBlockHashParse(t *testing.T) {
	var h transaction.BlockHash
	for i := range h {
		h[i] = byte(i + 1)
	}

	parsed, err := transaction.ParseBlockHash(h.String())
	require.NoError(t, err)
	assert.Equal(t, h, parsed)
	assert.False(t, parsed.IsZero())

	_, err = transaction.ParseBlockHash("abc")
	require.ErrorIs(t, err, transaction.ErrInvalidBlockHash)

	_, err = transaction.ParseBlockHash("0OIl")
	require.ErrorIs(t, err, transaction.ErrInvalidBlockHash)
}

func TestSignatureFromBytes(t *testing.T) {
	_, err := transaction.SignatureFromBytes(make([]byte, 65))
	require.ErrorIs(t, err, transaction.ErrInvalidSignatureLength)

	sig, err := transaction.SignatureFromBytes(make([]byte, transaction.SignatureLength))
	require.NoError(t, err)
	assert.True(t, sig.IsZero())
}
