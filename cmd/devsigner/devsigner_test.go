package devsigner

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/cosmos-wallet/internal/wallet/derivation"
	"github/chapool/cosmos-wallet/internal/wallet/ecdsa"
	"github/chapool/cosmos-wallet/internal/wallet/localsigner"
	"github/chapool/cosmos-wallet/internal/wallet/seed"
)

//nolint:dupword // BIP39 test vector
const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestHandlerServesSigner(t *testing.T) {
	m := seed.NewManager()
	require.NoError(t, localsigner.Unlock(m, localsigner.Credentials{Mnemonic: testMnemonic}))

	signer, err := localsigner.New(m)
	require.NoError(t, err)

	e, err := newHandler(signer)
	require.NoError(t, err)

	srv := httptest.NewServer(e)
	defer srv.Close()

	client, err := ecdsa.NewRPCClient(context.Background(), srv.URL)
	require.NoError(t, err)
	defer client.Close()

	res, err := client.PublicKey(context.Background(), &ecdsa.PublicKeyArgs{
		DerivationPath: derivation.Path{{0x01}}.Hex(),
		KeyID:          ecdsa.TestKeyLocalDevelopment.ID(),
	})
	require.NoError(t, err)
	assert.Len(t, res.PublicKey, 33)
}
