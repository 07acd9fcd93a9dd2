package wallet

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/cosmos-wallet/internal/api"
	"github/chapool/cosmos-wallet/internal/auth"
	"github/chapool/cosmos-wallet/internal/types"
	"github/chapool/cosmos-wallet/internal/util"
	"github/chapool/cosmos-wallet/internal/wallet"
)

func PostSendTransactionRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/send-transaction", postSendTransactionHandler(s))
}

func postSendTransactionHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		caller := auth.CallerFromContext(ctx)
		log := util.LogFromContext(ctx)

		if err := auth.ValidateNotAnonymous(caller.Principal); err != nil {
			return err
		}

		var body types.PostSendTransactionPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		sig, err := s.Wallet.SendTransaction(ctx, caller.Principal, &wallet.SendTransactionRequest{
			Source:         *body.Source,
			Config:         body.Config,
			RawTransaction: swag.StringValue(body.RawTransaction),
			Params:         body.Params,
		})
		if err != nil {
			log.Debug().Err(err).Msg("Failed to send transaction")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.PostSendTransactionResponse{
			Signature: swag.String(sig),
		})
	}
}
