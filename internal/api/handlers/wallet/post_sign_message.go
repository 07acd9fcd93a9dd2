package wallet

import (
	"net/http"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/cosmos-wallet/internal/api"
	"github/chapool/cosmos-wallet/internal/auth"
	"github/chapool/cosmos-wallet/internal/types"
	"github/chapool/cosmos-wallet/internal/util"
)

func PostSignMessageRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/sign-message", postSignMessageHandler(s))
}

func postSignMessageHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		caller := auth.CallerFromContext(ctx)
		log := util.LogFromContext(ctx)

		if err := auth.ValidateNotAnonymous(caller.Principal); err != nil {
			return err
		}

		var body types.PostSignMessagePayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		sig, err := s.Wallet.SignMessage(ctx, caller.Principal, []byte(swag.StringValue(body.Message)))
		if err != nil {
			log.Debug().Err(err).Msg("Failed to sign message")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.PostSignMessageResponse{
			Signature: strfmt.Base64(sig),
		})
	}
}
