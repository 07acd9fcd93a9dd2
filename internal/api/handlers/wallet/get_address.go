package wallet

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/cosmos-wallet/internal/api"
	"github/chapool/cosmos-wallet/internal/auth"
	"github/chapool/cosmos-wallet/internal/types"
	"github/chapool/cosmos-wallet/internal/util"
)

func GetAddressRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.GET("/address", getAddressHandler(s))
}

func getAddressHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		caller := auth.CallerFromContext(ctx)
		log := util.LogFromContext(ctx)

		addr, err := s.Wallet.Address(ctx, caller.Principal)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to derive address")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.GetAddressResponse{
			Address: swag.String(addr),
		})
	}
}
