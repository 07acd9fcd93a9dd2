package probe

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/cosmos-wallet/internal/config"
	"github/chapool/cosmos-wallet/internal/util/command"
)

func newReadiness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs readiness probes",
		Long: `This command queries /-/ready of the running server.
Exits with code 1 until every component is wired and the wallet state is initialized.`,
		Run: func(cmd *cobra.Command, _ []string) {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to parse args")
			}

			cfg := config.DefaultServiceConfigFromEnv()
			command.SetupLogger(cfg)

			if err := probe(cfg, "/-/ready", cfg.Management.ReadinessTimeout, verbose); err != nil {
				log.Error().Err(err).Msg("Readiness probe failed")
				os.Exit(1)
			}
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")

	return cmd
}
