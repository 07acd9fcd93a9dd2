package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/cosmos-wallet/internal/api"
	"github/chapool/cosmos-wallet/internal/types"
	"github/chapool/cosmos-wallet/internal/util"
	"github/chapool/cosmos-wallet/internal/wallet/ecdsa"
	"github/chapool/cosmos-wallet/internal/wallet/state"
)

func PatchStateRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Admin.PATCH("/state", patchStateHandler(s))
}

func patchStateHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PatchStatePayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		var updated state.State
		err := s.State.Mutate(func(st *state.State) error {
			if body.BroadcastServiceID != nil {
				if *body.BroadcastServiceID == "" {
					return state.ErrMissingBroadcastService
				}
				st.BroadcastServiceID = *body.BroadcastServiceID
			}

			if body.ECDSAKey != nil {
				if *body.ECDSAKey == "" {
					return state.ErrInvalidKey
				}
				st.ECDSAKey = ecdsa.ParseKey(*body.ECDSAKey)
			}

			updated = *st
			return nil
		})
		if err != nil {
			return err
		}

		log.Info().
			Str("broadcast_service_id", updated.BroadcastServiceID).
			Str("key", updated.ECDSAKey.String()).
			Msg("Wallet state updated")

		return util.ValidateAndReturn(c, http.StatusOK, stateResponse(updated))
	}
}
