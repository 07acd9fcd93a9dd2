package common

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/cosmos-wallet/internal/api"
	"github/chapool/cosmos-wallet/internal/util"
	"github/chapool/cosmos-wallet/internal/wallet/store"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// getHealthyHandler reports the process alive as long as the snapshot store
// answers. A missing snapshot is healthy.
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), s.Config.Management.LivenessTimeout)
		defer cancel()

		if _, err := s.Store.Load(ctx); err != nil && !errors.Is(err, store.ErrNoSnapshot) {
			util.LogFromContext(ctx).Warn().Err(err).Msg("Snapshot store is unhealthy")
			return c.String(521, "Not healthy.")
		}

		return c.String(http.StatusOK, "Healthy.")
	}
}
