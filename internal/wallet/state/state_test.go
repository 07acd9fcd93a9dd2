package state_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/cosmos-wallet/internal/wallet/ecdsa"
	"github/chapool/cosmos-wallet/internal/wallet/state"
	"github/chapool/cosmos-wallet/internal/wallet/store"
)

const serviceID = "http://broadcast.local:8545"

func newStore(t *testing.T) store.Store {
	t.Helper()

	s, err := store.NewBadger("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

type failingStore struct{ store.Store }

func (failingStore) Save(context.Context, []byte) error { return errors.New("disk full") }

func TestInitRequiresBroadcastService(t *testing.T) {
	c := state.NewContainer()

	require.ErrorIs(t, c.Init(state.InitArgs{}), state.ErrMissingBroadcastService)
	require.ErrorIs(t, c.Init(state.InitArgs{BroadcastServiceID: swag.String("")}), state.ErrMissingBroadcastService)
	assert.False(t, c.Initialized())
}

func TestInitDefaultsKey(t *testing.T) {
	for _, key := range []*string{nil, swag.String("")} {
		c := state.NewContainer()
		require.NoError(t, c.Init(state.InitArgs{BroadcastServiceID: swag.String(serviceID), ECDSAKey: key}))

		s, err := c.Get()
		require.NoError(t, err)
		assert.Equal(t, ecdsa.TestKey1, s.ECDSAKey)
		assert.Equal(t, serviceID, s.BroadcastServiceID)
	}
}

func TestInitParsesKey(t *testing.T) {
	c := state.NewContainer()
	require.NoError(t, c.Init(state.InitArgs{BroadcastServiceID: swag.String(serviceID), ECDSAKey: swag.String("dfx_test_key")}))

	s, err := c.Get()
	require.NoError(t, err)
	assert.Equal(t, ecdsa.TestKeyLocalDevelopment, s.ECDSAKey)
}

func TestAccessBeforeInit(t *testing.T) {
	c := state.NewContainer()
	called := false

	require.ErrorIs(t, c.Read(func(state.State) { called = true }), state.ErrNotInitialized)
	require.ErrorIs(t, c.Mutate(func(*state.State) error { called = true; return nil }), state.ErrNotInitialized)
	_, err := c.Take()
	require.ErrorIs(t, err, state.ErrNotInitialized)
	assert.False(t, called)
}

func TestMutateCommitsOnlyOnSuccess(t *testing.T) {
	c := state.NewContainer()
	c.Replace(state.State{BroadcastServiceID: serviceID, ECDSAKey: ecdsa.TestKey1})

	failure := errors.New("rejected")
	err := c.Mutate(func(s *state.State) error {
		s.ECDSAKey = ecdsa.ProductionKey1
		return failure
	})
	require.ErrorIs(t, err, failure)

	s, err := c.Get()
	require.NoError(t, err)
	assert.Equal(t, ecdsa.TestKey1, s.ECDSAKey)

	require.NoError(t, c.Mutate(func(s *state.State) error {
		s.ECDSAKey = ecdsa.ProductionKey1
		return nil
	}))

	s, err = c.Get()
	require.NoError(t, err)
	assert.Equal(t, ecdsa.ProductionKey1, s.ECDSAKey)
}

func TestUpgradeRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	keys := []ecdsa.Key{ecdsa.TestKeyLocalDevelopment, ecdsa.TestKey1, ecdsa.ProductionKey1, ecdsa.Custom("custom key")}
	for _, key := range keys {
		before := state.State{BroadcastServiceID: serviceID, ECDSAKey: key}

		c := state.NewContainer()
		c.Replace(before)
		require.NoError(t, c.PreUpgrade(ctx, st))
		assert.False(t, c.Initialized())

		restarted := state.NewContainer()
		require.NoError(t, restarted.PostUpgrade(ctx, st, nil))

		after, err := restarted.Get()
		require.NoError(t, err)
		assert.Equal(t, before, after)
	}
}

func TestPostUpgradeOverrides(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	c := state.NewContainer()
	c.Replace(state.State{BroadcastServiceID: serviceID, ECDSAKey: ecdsa.ProductionKey1})
	require.NoError(t, c.PreUpgrade(ctx, st))

	restarted := state.NewContainer()
	require.NoError(t, restarted.PostUpgrade(ctx, st, &state.InitArgs{BroadcastServiceID: swag.String("http://other:8545")}))

	s, err := restarted.Get()
	require.NoError(t, err)
	assert.Equal(t, "http://other:8545", s.BroadcastServiceID)
	assert.Equal(t, ecdsa.ProductionKey1, s.ECDSAKey)

	require.NoError(t, restarted.PostUpgrade(ctx, st, &state.InitArgs{ECDSAKey: swag.String("test_key_1")}))
	s, err = restarted.Get()
	require.NoError(t, err)
	assert.Equal(t, serviceID, s.BroadcastServiceID)
	assert.Equal(t, ecdsa.TestKey1, s.ECDSAKey)
}

func TestPostUpgradeRejectsEmptyKey(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	c := state.NewContainer()
	c.Replace(state.State{BroadcastServiceID: serviceID, ECDSAKey: ecdsa.ProductionKey1})
	require.NoError(t, c.PreUpgrade(ctx, st))

	restarted := state.NewContainer()
	err := restarted.PostUpgrade(ctx, st, &state.InitArgs{ECDSAKey: swag.String("")})
	require.ErrorIs(t, err, state.ErrInvalidKey)
	assert.False(t, restarted.Initialized())
}

func TestPostUpgradeWithoutSnapshot(t *testing.T) {
	err := state.NewContainer().PostUpgrade(context.Background(), newStore(t), nil)
	require.ErrorIs(t, err, store.ErrNoSnapshot)
}

func TestPreUpgradeFailureKeepsState(t *testing.T) {
	c := state.NewContainer()
	c.Replace(state.State{BroadcastServiceID: serviceID, ECDSAKey: ecdsa.TestKey1})

	require.Error(t, c.PreUpgrade(context.Background(), failingStore{}))
	assert.True(t, c.Initialized())
}

func TestStateString(t *testing.T) {
	s := state.State{BroadcastServiceID: serviceID, ECDSAKey: ecdsa.ProductionKey1}
	assert.Equal(t, "Broadcast service: "+serviceID+"\nECDSA key: key_1\n", s.String())
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := state.Decode([]byte("not json"))
	require.Error(t, err)

	_, err = state.Decode([]byte(`{"ecdsa_key":"key_1"}`))
	require.ErrorIs(t, err, state.ErrMissingBroadcastService)
}
