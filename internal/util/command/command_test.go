package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/cosmos-wallet/internal/api"
	"github/chapool/cosmos-wallet/internal/config"
	"github/chapool/cosmos-wallet/internal/test"
	"github/chapool/cosmos-wallet/internal/util/command"
	"github/chapool/cosmos-wallet/internal/wallet/ecdsa"
	"github/chapool/cosmos-wallet/internal/wallet/store"
)

func TestWithServer(t *testing.T) {
	ctx := t.Context()

	var testError = errors.New("test error")

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Logger.PrettyPrintConsole = false
	cfg.Store.Driver = store.DriverBadger
	cfg.Store.Dir = t.TempDir()
	cfg.Wallet.SignerURL = config.SignerURLLocal
	cfg.Wallet.LocalSignerMnemonic = test.TestMnemonic
	cfg.Wallet.BroadcastServiceID = swag.String("http://127.0.0.1:1")
	cfg.Wallet.ECDSAKey = swag.String("dfx_test_key")

	resultErr := command.WithServer(ctx, cfg, func(_ context.Context, s *api.Server) error {
		st, err := s.State.Get()
		require.NoError(t, err)

		assert.Equal(t, "http://127.0.0.1:1", st.BroadcastServiceID)
		assert.Equal(t, ecdsa.TestKeyLocalDevelopment, st.ECDSAKey)

		return testError
	})

	assert.Equal(t, testError, resultErr)

	// the state was snapshotted on shutdown and is restored with overrides
	cfg.Wallet.BroadcastServiceID = nil
	cfg.Wallet.ECDSAKey = swag.String("key_1")

	resultErr = command.WithServer(ctx, cfg, func(_ context.Context, s *api.Server) error {
		st, err := s.State.Get()
		require.NoError(t, err)

		assert.Equal(t, "http://127.0.0.1:1", st.BroadcastServiceID)
		assert.Equal(t, ecdsa.ProductionKey1, st.ECDSAKey)

		return nil
	})

	require.NoError(t, resultErr)
}

func TestNewSubcommandGroup(t *testing.T) {
	sub := command.NewSubcommandGroup("group", command.NewSubcommandGroup("child"))
	assert.Equal(t, "group", sub.Use)
	require.Len(t, sub.Commands(), 1)
	assert.Equal(t, "child", sub.Commands()[0].Use)
}
