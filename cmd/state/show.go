package state

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/cosmos-wallet/internal/api"
	"github/chapool/cosmos-wallet/internal/config"
	"github/chapool/cosmos-wallet/internal/metrics"
	"github/chapool/cosmos-wallet/internal/util/command"
	walletstate "github/chapool/cosmos-wallet/internal/wallet/state"
	"github/chapool/cosmos-wallet/internal/wallet/store"
)

func newShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Prints the saved wallet state",
		Long: `Prints the wallet state snapshot saved at the last shutdown.
The server must be stopped when the badger store is used.`,
		Run: func(_ *cobra.Command, _ []string) {
			showCmdFunc()
		},
	}
}

func showCmdFunc() {
	cfg := config.DefaultServiceConfigFromEnv()
	command.SetupLogger(cfg)

	st, err := api.NewStore(cfg, metrics.New())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open snapshot store")
	}
	defer st.Close()

	out, err := show(context.Background(), st)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read wallet state")
	}

	//nolint:forbidigo // the state is the output of this command
	fmt.Print(out)
}

func show(ctx context.Context, st store.Store) (string, error) {
	data, err := st.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNoSnapshot) {
			return "No snapshot saved.\n", nil
		}
		return "", err
	}

	s, err := walletstate.Decode(data)
	if err != nil {
		return "", err
	}

	return s.String(), nil
}
