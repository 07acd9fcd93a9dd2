package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/cosmos-wallet/internal/api"
	"github/chapool/cosmos-wallet/internal/api/router"
	"github/chapool/cosmos-wallet/internal/config"
	"github/chapool/cosmos-wallet/internal/util/command"
)

const shutdownTimeout = 30 * time.Second

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Starts the server",
		Long: `Starts the wallet server.

On first start the wallet state is initialized from WALLET_BROADCAST_SERVICE_ID
and WALLET_ECDSA_KEY. On later starts the snapshot saved at shutdown is
restored and the same variables, when set, override the restored values.`,
		Run: func(_ *cobra.Command, _ []string) {
			runServer()
		},
	}
}

func runServer() {
	cfg := config.DefaultServiceConfigFromEnv()
	command.SetupLogger(cfg)

	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	if err := s.InitState(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize wallet state")
	}

	router.Init(s)

	go func() {
		if err := s.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info().Msg("Server closed")
			} else {
				log.Fatal().Err(err).Msg("Failed to start server")
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if errs := s.Shutdown(ctx); len(errs) > 0 {
		log.Fatal().Errs("shutdownErrors", errs).Msg("Failed to gracefully shut down server")
	}

	log.Info().Msg("Server shut down")
}
