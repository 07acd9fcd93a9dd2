package router

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"github/chapool/cosmos-wallet/internal/api"
	"github/chapool/cosmos-wallet/internal/api/handlers"
	"github/chapool/cosmos-wallet/internal/api/httperrors"
	"github/chapool/cosmos-wallet/internal/api/middleware"
	"github/chapool/cosmos-wallet/internal/util"
)

func Init(s *api.Server) {
	s.Echo = echo.New()

	s.Echo.Debug = s.Config.Echo.Debug
	s.Echo.HideBanner = true
	s.Echo.Logger.SetOutput(&echoLogger{level: s.Config.Logger.RequestLevel, log: log.With().Str("component", "echo").Logger()})

	s.Echo.HTTPErrorHandler = httperrors.HTTPErrorHandler(s.Config.Echo.HideInternalServerErrorDetails)
	s.Echo.Validator = util.NewValidator()

	// ---
	// General middleware
	if s.Config.Echo.EnableTrailingSlashMiddleware {
		s.Echo.Pre(echoMiddleware.RemoveTrailingSlash())
	} else {
		log.Warn().Msg("Disabling trailing slash middleware due to environment config")
	}

	if s.Config.Echo.EnableRecoverMiddleware {
		s.Echo.Use(echoMiddleware.RecoverWithConfig(echoMiddleware.RecoverConfig{
			LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
				util.LogFromContext(c.Request().Context()).Error().Err(err).Bytes("stack", stack).Msg("Recovered from panic")
				return err
			},
		}))
	} else {
		log.Warn().Msg("Disabling recover middleware due to environment config")
	}

	if s.Config.Echo.EnableRequestIDMiddleware {
		s.Echo.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
			Generator: uuid.NewString,
		}))
	} else {
		log.Warn().Msg("Disabling request ID middleware due to environment config")
	}

	if s.Config.Echo.EnableLoggerMiddleware {
		s.Echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
			Level:             s.Config.Logger.RequestLevel,
			LogRequestHeader:  s.Config.Logger.LogRequestHeader,
			LogResponseHeader: s.Config.Logger.LogResponseHeader,
		}))
	} else {
		log.Warn().Msg("Disabling logger middleware due to environment config")
	}

	if s.Config.Echo.EnableCORSMiddleware {
		s.Echo.Use(echoMiddleware.CORS())
	} else {
		log.Warn().Msg("Disabling CORS middleware due to environment config")
	}

	if s.Config.Prometheus.Enabled {
		s.Echo.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Namespace:  "wallet",
			Registerer: s.Metrics.Registry,
			Skipper: func(c echo.Context) bool {
				return strings.HasPrefix(c.Path(), "/-/") || c.Path() == s.Config.Prometheus.Path
			},
		}))
	}

	s.Router = &api.Router{
		Routes: nil, // will be populated by handlers.AttachAllRoutes(s)

		// Unsecured base group available at /**
		Root: s.Echo.Group(""),

		// Management endpoints, unauthenticated at /-/**
		Management: s.Echo.Group("/-"),

		// Wallet endpoints at /api/v1/wallet/**, the caller comes from the bearer token
		APIV1Wallet: s.Echo.Group("/api/v1/wallet",
			middleware.AuthWithConfig(middleware.AuthConfig{Tokens: s.Tokens}),
			middleware.AttachedCycles(),
		),

		// Administrative endpoints at /api/v1/admin/**, admin role only
		APIV1Admin: s.Echo.Group("/api/v1/admin",
			middleware.AuthWithConfig(middleware.AuthConfig{Tokens: s.Tokens}),
			middleware.RequireAdmin(),
		),
	}

	if s.Config.Prometheus.Enabled {
		s.Router.Routes = append(s.Router.Routes,
			s.Router.Root.GET(s.Config.Prometheus.Path, echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
				Gatherer: s.Metrics.Registry,
			})),
		)
	}

	// ---
	// Finally attach our handlers
	handlers.AttachAllRoutes(s)
}
