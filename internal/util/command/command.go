package command

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/cosmos-wallet/internal/api"
	"github/chapool/cosmos-wallet/internal/config"
	"golang.org/x/term"
)

const shutdownTimeout = 30 * time.Second

// NewSubcommandGroup returns a command that only groups its subcommands and
// prints its help when run on its own.
func NewSubcommandGroup(name string, subCommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: "Subcommands for " + name,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				log.Error().Err(err).Msg("Failed to print help")
			}
		},
	}

	cmd.AddCommand(subCommands...)

	return cmd
}

// SetupLogger applies the logger config globally. Console pretty printing is
// only used when stdout is a terminal.
func SetupLogger(cfg config.Server) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(cfg.Logger.Level)

	if cfg.Logger.PrettyPrintConsole && term.IsTerminal(int(os.Stdout.Fd())) {
		log.Logger = log.Output(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.TimeFormat = "15:04:05"
		}))
	}
}

// WithServer builds a server from cfg with its wallet state initialized,
// runs f and shuts the server down again.
func WithServer(ctx context.Context, cfg config.Server, f func(ctx context.Context, s *api.Server) error) error {
	SetupLogger(cfg)

	s, err := api.InitNewServer(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to initialize server")
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
			log.Error().Errs("errors", errs).Msg("Failed to gracefully shut down server")
		}
	}()

	if err := s.InitState(ctx); err != nil {
		return errors.Wrap(err, "failed to initialize wallet state")
	}

	return f(ctx, s)
}
