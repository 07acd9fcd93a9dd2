package test

import (
	"context"
	"testing"

	"github.com/go-openapi/swag"
	"github/chapool/cosmos-wallet/internal/api"
	"github/chapool/cosmos-wallet/internal/api/router"
	"github/chapool/cosmos-wallet/internal/config"
	"github/chapool/cosmos-wallet/internal/wallet/localsigner"
	"github/chapool/cosmos-wallet/internal/wallet/seed"
	"github/chapool/cosmos-wallet/internal/wallet/store"
)

//nolint:dupword // BIP39 test vector
const TestMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

// WithTestServer returns a fully configured server backed by an in-memory
// snapshot store, the in-process signer and a fake broadcast service.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	WithTestServerConfigurable(t, config.DefaultServiceConfigFromEnv(), func(s *api.Server, _ *Broadcaster) {
		t.Helper()
		closure(s)
	})
}

// WithTestServerAndBroadcaster is WithTestServer also handing out the fake
// broadcast service.
func WithTestServerAndBroadcaster(t *testing.T, closure func(s *api.Server, b *Broadcaster)) {
	t.Helper()

	WithTestServerConfigurable(t, config.DefaultServiceConfigFromEnv(), closure)
}

func WithTestServerConfigurable(t *testing.T, cfg config.Server, closure func(s *api.Server, b *Broadcaster)) {
	t.Helper()

	b := NewTestBroadcaster(t)
	cfg.Wallet.BroadcastServiceID = swag.String(b.URL)
	cfg.Wallet.ECDSAKey = nil
	cfg.Logger.PrettyPrintConsole = false

	s := NewTestServer(t, cfg)

	closure(s, b)
}

// NewTestServer builds a server whose state is initialized from cfg.
func NewTestServer(t *testing.T, cfg config.Server) *api.Server {
	t.Helper()

	st, err := store.NewBadger("")
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}

	m := seed.NewManager()
	if err := m.Initialize(TestMnemonic, ""); err != nil {
		t.Fatalf("failed to initialize test seed: %v", err)
	}

	signer, err := localsigner.New(m)
	if err != nil {
		t.Fatalf("failed to create test signer: %v", err)
	}

	s, err := api.InitNewServerWithDependencies(cfg, st, signer)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	if err := s.InitState(context.Background()); err != nil {
		t.Fatalf("failed to initialize wallet state: %v", err)
	}

	router.Init(s)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Management.LivenessTimeout)
		defer cancel()

		if errs := s.Shutdown(ctx); len(errs) > 0 {
			t.Errorf("failed to shutdown server: %v", errs)
		}
	})

	return s
}
