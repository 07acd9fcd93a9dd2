package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github/chapool/cosmos-wallet/internal/auth"
	"github/chapool/cosmos-wallet/internal/config"
	"github/chapool/cosmos-wallet/internal/metrics"
	"github/chapool/cosmos-wallet/internal/util"
	"github/chapool/cosmos-wallet/internal/wallet"
	"github/chapool/cosmos-wallet/internal/wallet/broadcast"
	"github/chapool/cosmos-wallet/internal/wallet/ecdsa"
	"github/chapool/cosmos-wallet/internal/wallet/signer"
	"github/chapool/cosmos-wallet/internal/wallet/state"
	"github/chapool/cosmos-wallet/internal/wallet/store"
)

type Router struct {
	Routes      []*echo.Route
	Root        *echo.Group
	Management  *echo.Group
	APIV1Wallet *echo.Group
	APIV1Admin  *echo.Group
}

// Server is a central struct keeping all the dependencies.
// It is initialized with wire, which handles making the new instances of the components
// in the right order. To add a new component, 3 steps are required:
// - declaring it in this struct
// - adding a provider function in providers.go
// - adding the provider's function name to the arguments of wire.Build() in wire.go
//
// Components labeled as `wire:"-"` will be skipped and have to be initialized after the InitNewServer* call.
// For more information about wire refer to https://pkg.go.dev/github.com/google/wire
type Server struct {
	// skip wire:
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config    config.Server
	Store     store.Store
	State     *state.Container
	ECDSA     ecdsa.Client
	Signer    signer.Service
	Broadcast *broadcast.RPCDialer
	Wallet    wallet.Service
	Tokens    *auth.TokenService
	Metrics   *metrics.Service
}

// newServerWithComponents is used by wire to initialize the server components.
// Components not listed here won't be handled by wire and should be initialized separately.
// Components which shouldn't be handled must be labeled `wire:"-"` in Server struct.
func newServerWithComponents(
	cfg config.Server,
	st store.Store,
	container *state.Container,
	ecdsaClient ecdsa.Client,
	signerService signer.Service,
	dialer *broadcast.RPCDialer,
	walletService wallet.Service,
	tokens *auth.TokenService,
	metrics *metrics.Service,
) *Server {
	return &Server{
		Config:    cfg,
		Store:     st,
		State:     container,
		ECDSA:     ecdsaClient,
		Signer:    signerService,
		Broadcast: dialer,
		Wallet:    walletService,
		Tokens:    tokens,
		Metrics:   metrics,
	}
}

func NewServer(config config.Server) *Server {
	s := &Server{
		Config: config,
	}

	return s
}

// Ready reports whether every component is wired and the wallet state is
// initialized.
func (s *Server) Ready() bool {
	if err := util.IsStructInitialized(s); err != nil {
		log.Debug().Err(err).Msg("Server is not fully initialized")
		return false
	}

	if !s.State.Initialized() {
		log.Debug().Msg("Wallet state is not initialized")
		return false
	}

	return true
}

// InitState restores the wallet state from the snapshot store, applying the
// configured values as overrides. Without a snapshot the configured values
// are the init arguments.
func (s *Server) InitState(ctx context.Context) error {
	args := state.InitArgs{
		BroadcastServiceID: s.Config.Wallet.BroadcastServiceID,
		ECDSAKey:           s.Config.Wallet.ECDSAKey,
	}

	err := s.State.PostUpgrade(ctx, s.Store, &args)
	if err == nil {
		log.Info().Msg("Wallet state restored from snapshot")
		return nil
	}
	if !errors.Is(err, store.ErrNoSnapshot) {
		return err
	}

	if err := s.State.Init(args); err != nil {
		return err
	}

	log.Info().Msg("Wallet state initialized")

	return nil
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return err
	}

	return nil
}

// Shutdown stops serving, snapshots the wallet state and releases every
// connection.
func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	if s.State != nil && s.Store != nil && s.State.Initialized() {
		log.Debug().Msg("Saving wallet state snapshot")

		if err := s.State.PreUpgrade(ctx, s.Store); err != nil {
			log.Error().Err(err).Msg("Failed to save wallet state snapshot")
			errs = append(errs, err)
		}
	}

	if s.Broadcast != nil {
		s.Broadcast.Close()
	}

	if c, ok := s.ECDSA.(interface{ Close() }); ok {
		c.Close()
	}

	if s.Store != nil {
		log.Debug().Msg("Closing snapshot store")

		if err := s.Store.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close snapshot store")
			errs = append(errs, err)
		}
	}

	return errs
}
