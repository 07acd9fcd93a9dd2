package handlers

import (
	"github.com/labstack/echo/v4"
	"github/chapool/cosmos-wallet/internal/api"
	"github/chapool/cosmos-wallet/internal/api/handlers/admin"
	"github/chapool/cosmos-wallet/internal/api/handlers/common"
	"github/chapool/cosmos-wallet/internal/api/handlers/wallet"
)

func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = append(s.Router.Routes, []*echo.Route{
		admin.GetStateRoute(s),
		admin.PatchStateRoute(s),
		common.GetHealthyRoute(s),
		common.GetReadyRoute(s),
		common.GetVersionRoute(s),
		wallet.GetAddressRoute(s),
		wallet.PostSendTransactionRoute(s),
		wallet.PostSignMessageRoute(s),
	}...)
}
