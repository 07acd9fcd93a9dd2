package address_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/cosmos-wallet/internal/wallet/address"
)

func TestPublicKeyRoundTrip(t *testing.T) {
	priv, err := crypto.GenerateKey()
	require.NoError(t, err)
	raw := crypto.CompressPubkey(&priv.PublicKey)

	pk, err := address.PublicKeyFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, pk.Bytes())

	parsed, err := address.ParsePublicKey(pk.String())
	require.NoError(t, err)
	assert.Equal(t, pk, parsed)
}

func TestPublicKeyFromBytesRejectsWrongLength(t *testing.T) {
	_, err := address.PublicKeyFromBytes(make([]byte, 32))
	require.ErrorIs(t, err, address.ErrInvalidPublicKey)
}

func TestPublicKeyFromBytesRejectsOffCurve(t *testing.T) {
	raw := make([]byte, address.PublicKeyLength)
	raw[0] = 0x05

	_, err := address.PublicKeyFromBytes(raw)
	require.ErrorIs(t, err, address.ErrInvalidPublicKey)
}
