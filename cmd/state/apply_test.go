package state

import (
	"context"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/cosmos-wallet/internal/api"
	"github/chapool/cosmos-wallet/internal/config"
	"github/chapool/cosmos-wallet/internal/test"
	"github/chapool/cosmos-wallet/internal/util/command"
	"github/chapool/cosmos-wallet/internal/wallet/store"
)

func TestApplyThenShow(t *testing.T) {
	ctx := t.Context()

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Logger.PrettyPrintConsole = false
	cfg.Store.Driver = store.DriverBadger
	cfg.Store.Dir = t.TempDir()
	cfg.Wallet.SignerURL = config.SignerURLLocal
	cfg.Wallet.LocalSignerMnemonic = test.TestMnemonic
	cfg.Wallet.BroadcastServiceID = swag.String("http://broadcaster")
	cfg.Wallet.ECDSAKey = swag.String("key_1")

	var out string
	err := command.WithServer(ctx, cfg, func(_ context.Context, s *api.Server) error {
		var err error
		out, err = apply(s)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, "Broadcast service: http://broadcaster\nECDSA key: key_1\n", out)

	// apply saved the snapshot on shutdown
	st, err := store.NewBadger(cfg.Store.Dir)
	require.NoError(t, err)
	defer st.Close()

	shown, err := show(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, out, shown)
}
