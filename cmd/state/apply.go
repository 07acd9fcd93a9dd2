package state

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/cosmos-wallet/internal/api"
	"github/chapool/cosmos-wallet/internal/config"
	"github/chapool/cosmos-wallet/internal/util/command"
)

func newApply() *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Applies the configured init arguments to the saved wallet state",
		Long: `Initializes the wallet state from WALLET_BROADCAST_SERVICE_ID and
WALLET_ECDSA_KEY, or restores the saved snapshot with them as overrides,
prints the result and saves it again. The HTTP server is not started.`,
		Run: func(cmd *cobra.Command, _ []string) {
			applyCmdFunc(cmd.Context())
		},
	}
}

func applyCmdFunc(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}

	var out string
	err := command.WithServer(ctx, config.DefaultServiceConfigFromEnv(), func(_ context.Context, s *api.Server) error {
		var err error
		out, err = apply(s)
		return err
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to apply wallet state")
	}

	//nolint:forbidigo // the state is the output of this command
	fmt.Print(out)
}

func apply(s *api.Server) (string, error) {
	st, err := s.State.Get()
	if err != nil {
		return "", err
	}

	return st.String(), nil
}
