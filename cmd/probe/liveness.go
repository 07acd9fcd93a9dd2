package probe

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/cosmos-wallet/internal/config"
	"github/chapool/cosmos-wallet/internal/util/command"
)

func newLiveness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Runs liveness probes",
		Long: `This command queries /-/healthy of the running server.
Exits with code 1 when the server or its snapshot store is unhealthy.`,
		Run: func(cmd *cobra.Command, _ []string) {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to parse args")
			}

			cfg := config.DefaultServiceConfigFromEnv()
			command.SetupLogger(cfg)

			if err := probe(cfg, "/-/healthy", cfg.Management.LivenessTimeout, verbose); err != nil {
				log.Error().Err(err).Msg("Liveness probe failed")
				os.Exit(1)
			}
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")

	return cmd
}
