package db

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/cosmos-wallet/internal/config"
	"github/chapool/cosmos-wallet/internal/util/command"
	"github/chapool/cosmos-wallet/internal/wallet/store"
)

func newMigrate() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Executes all migrations which are not yet applied.",
		Long: `Applies the embedded snapshot store migrations to the database
configured through PG* variables. Only needed for WALLET_STORE_DRIVER=postgres.`,
		Run: func(_ *cobra.Command, _ []string) {
			migrateCmdFunc()
		},
	}
}

func migrateCmdFunc() {
	cfg := config.DefaultServiceConfigFromEnv()
	command.SetupLogger(cfg)

	db, err := store.OpenPostgresDB(context.Background(), cfg.Store.Postgres.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Str("dsn", cfg.Store.Postgres.Redacted()).Msg("Failed to connect to database")
	}
	defer db.Close()

	n, err := store.Migrate(db)
	if err != nil {
		log.Fatal().Err(err).Msg("Error while applying migrations")
	}

	log.Info().Int("appliedMigrationsCount", n).Msg("Successfully applied migrations")
}
