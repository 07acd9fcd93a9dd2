package env

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/cosmos-wallet/internal/config"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Prints the env",
		Long: `Prints the currently applied env

Secrets are never printed.`,
		Run: func(_ *cobra.Command, _ []string) {
			runEnv()
		},
	}
}

func runEnv() {
	cfg := config.DefaultServiceConfigFromEnv()

	c, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal the env")
	}

	//nolint:forbidigo // the env is the output of this command
	fmt.Println(string(c))
}
