package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/cosmos-wallet/cmd/db"
	"github/chapool/cosmos-wallet/cmd/devsigner"
	"github/chapool/cosmos-wallet/cmd/env"
	"github/chapool/cosmos-wallet/cmd/probe"
	"github/chapool/cosmos-wallet/cmd/server"
	"github/chapool/cosmos-wallet/cmd/state"
	"github/chapool/cosmos-wallet/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "app",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

A custodial wallet front-end delegating signing to a threshold ECDSA service.
Requires configuration through ENV.`, config.ModuleName),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// attach the subcommands
	rootCmd.AddCommand(
		db.New(),
		devsigner.New(),
		env.New(),
		probe.New(),
		server.New(),
		state.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
