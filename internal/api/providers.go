package api

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/cosmos-wallet/internal/auth"
	"github/chapool/cosmos-wallet/internal/config"
	"github/chapool/cosmos-wallet/internal/metrics"
	"github/chapool/cosmos-wallet/internal/wallet/ecdsa"
	"github/chapool/cosmos-wallet/internal/wallet/localsigner"
	"github/chapool/cosmos-wallet/internal/wallet/seed"
	"github/chapool/cosmos-wallet/internal/wallet/store"
)

// NewStore opens the snapshot store selected by the config.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewStore(cfg config.Server, m *metrics.Service) (store.Store, error) {
	switch cfg.Store.Driver {
	case store.DriverBadger:
		return store.NewBadger(cfg.Store.Dir)
	case store.DriverPostgres:
		db, err := store.OpenPostgresDB(context.Background(), cfg.Store.Postgres.ConnectionString())
		if err != nil {
			return nil, err
		}

		db.SetMaxOpenConns(cfg.Store.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Store.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Store.Postgres.ConnMaxLifetime)

		log.Debug().Str("dsn", cfg.Store.Postgres.Redacted()).Msg("Connected to snapshot database")

		return store.NewPostgres(db, m.Registry)
	default:
		return nil, errors.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// NewECDSAClient connects to the threshold signing service, or unlocks the
// in-process development signer when the signer url is "local".
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewECDSAClient(cfg config.Server) (ecdsa.Client, error) {
	if cfg.Wallet.SignerURL != config.SignerURLLocal {
		return ecdsa.NewRPCClient(context.Background(), cfg.Wallet.SignerURL)
	}

	log.Warn().Msg("Using the in-process development signer")

	seedManager := seed.NewManager()
	if err := localsigner.Unlock(seedManager, localsigner.Credentials{
		Mnemonic:     cfg.Wallet.LocalSignerMnemonic,
		Passphrase:   cfg.Wallet.LocalSignerPassphrase,
		KeystorePath: cfg.Wallet.LocalSignerKeystore,
	}); err != nil {
		return nil, err
	}

	return localsigner.New(seedManager)
}

func NewTokenService(cfg config.Server) *auth.TokenService {
	return auth.NewTokenService([]byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer)
}
