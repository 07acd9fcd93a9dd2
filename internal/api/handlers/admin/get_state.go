package admin

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/cosmos-wallet/internal/api"
	"github/chapool/cosmos-wallet/internal/types"
	"github/chapool/cosmos-wallet/internal/util"
	"github/chapool/cosmos-wallet/internal/wallet/state"
)

func GetStateRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Admin.GET("/state", getStateHandler(s))
}

func getStateHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		st, err := s.State.Get()
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, stateResponse(st))
	}
}

func stateResponse(st state.State) *types.GetStateResponse {
	return &types.GetStateResponse{
		BroadcastServiceID: swag.String(st.BroadcastServiceID),
		ECDSAKey:           swag.String(st.ECDSAKey.String()),
	}
}
