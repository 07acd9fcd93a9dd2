package util

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFromContext returns the request-scoped logger stored in ctx, falling back
// to the global logger.
func LogFromContext(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &log.Logger
	}

	return l
}

// LogLevelFromString parses s, returning def for unknown or empty levels.
func LogLevelFromString(s string, def zerolog.Level) zerolog.Level {
	if s == "" {
		return def
	}

	l, err := zerolog.ParseLevel(s)
	if err != nil {
		log.Warn().Err(err).Str("level", s).Msg("Unknown log level, using default")
		return def
	}

	return l
}
