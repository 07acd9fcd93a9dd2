package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github/chapool/cosmos-wallet/internal/api/httperrors"
	"github/chapool/cosmos-wallet/internal/auth"
	"github/chapool/cosmos-wallet/internal/util"
)

const bearerPrefix = "Bearer "

type AuthConfig struct {
	Skipper middleware.Skipper
	Tokens  *auth.TokenService
}

// AuthWithConfig resolves the caller from the bearer token. Requests without
// a token continue as the anonymous caller; an invalid token is rejected.
func AuthWithConfig(config AuthConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = middleware.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			req := c.Request()
			header := req.Header.Get(echo.HeaderAuthorization)

			caller := auth.AnonymousCaller()
			if header != "" {
				if !strings.HasPrefix(header, bearerPrefix) {
					return httperrors.ErrUnauthorizedToken
				}

				var err error
				caller, err = config.Tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
				if err != nil {
					util.LogFromContext(req.Context()).Debug().Err(err).Msg("Rejected bearer token")
					return httperrors.ErrUnauthorizedToken
				}
			}

			ctx := auth.WithCaller(req.Context(), caller)
			l := util.LogFromContext(ctx).With().Str("caller", caller.Principal.String()).Logger()
			c.SetRequest(req.WithContext(l.WithContext(ctx)))

			return next(c)
		}
	}
}

// RequireAdmin only lets callers with the admin role through.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := auth.CallerFromContext(c.Request().Context())
			if caller.Principal.IsAnonymous() {
				return auth.ErrAnonymousCaller
			}
			if !caller.Role.IsAdmin() {
				return httperrors.ErrForbiddenNotAdmin
			}

			return next(c)
		}
	}
}
