package devsigner

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/cosmos-wallet/internal/config"
	"github/chapool/cosmos-wallet/internal/util/command"
	"github/chapool/cosmos-wallet/internal/wallet/localsigner"
	"github/chapool/cosmos-wallet/internal/wallet/seed"
)

const shutdownTimeout = 10 * time.Second

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "devsigner",
		Short: "Starts the development signing service",
		Long: `Serves ecdsa_publicKey and ecdsa_sign over JSON-RPC on
WALLET_DEV_SIGNER_LISTEN_ADDRESS, deriving keys from a mnemonic.
For local development only: keys are not threshold shared.`,
		Run: func(_ *cobra.Command, _ []string) {
			runDevSigner()
		},
	}
}

func newHandler(signer *localsigner.Signer) (*echo.Echo, error) {
	srv, err := localsigner.NewRPCServer(signer)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.POST("/", echo.WrapHandler(srv))

	return e, nil
}

func runDevSigner() {
	cfg := config.DefaultServiceConfigFromEnv()
	command.SetupLogger(cfg)

	seedManager := seed.NewManager()
	if err := localsigner.Unlock(seedManager, localsigner.Credentials{
		Mnemonic:     cfg.Wallet.LocalSignerMnemonic,
		Passphrase:   cfg.Wallet.LocalSignerPassphrase,
		KeystorePath: cfg.Wallet.LocalSignerKeystore,
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to unlock signer")
	}
	defer seedManager.Clear()

	signer, err := localsigner.New(seedManager)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create signer")
	}

	e, err := newHandler(signer)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create rpc server")
	}

	go func() {
		log.Info().Str("address", cfg.Wallet.DevSignerListenAddress).Msg("Development signer listening")
		if err := e.Start(cfg.Wallet.DevSignerListenAddress); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start development signer")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down development signer")
	}
}
