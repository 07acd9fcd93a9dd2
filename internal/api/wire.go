//go:build wireinject

package api

import (
	"github.com/google/wire"
	"github/chapool/cosmos-wallet/internal/config"
	"github/chapool/cosmos-wallet/internal/metrics"
	"github/chapool/cosmos-wallet/internal/wallet"
	"github/chapool/cosmos-wallet/internal/wallet/broadcast"
	"github/chapool/cosmos-wallet/internal/wallet/ecdsa"
	"github/chapool/cosmos-wallet/internal/wallet/signer"
	"github/chapool/cosmos-wallet/internal/wallet/state"
	"github/chapool/cosmos-wallet/internal/wallet/store"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	state.NewContainer,
	signer.NewService,
	broadcastSet,
	wallet.NewService,
	NewTokenService,
	metrics.New,
)

var broadcastSet = wire.NewSet(
	broadcast.NewRPCDialer,
	wire.Bind(new(broadcast.Dialer), new(*broadcast.RPCDialer)),
)

// InitNewServer returns a new Server instance.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet, NewStore, NewECDSAClient)
	return new(Server), nil
}

// InitNewServerWithDependencies returns a new Server instance using the given
// snapshot store and signing client.
// All the other components are initialized via go wire according to the configuration.
func InitNewServerWithDependencies(
	_ config.Server,
	_ store.Store,
	_ ecdsa.Client,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
