package signer

import (
	"context"

	"github.com/pkg/errors"
	"github/chapool/cosmos-wallet/internal/metrics"
	"github/chapool/cosmos-wallet/internal/util"
	"github/chapool/cosmos-wallet/internal/wallet/derivation"
	"github/chapool/cosmos-wallet/internal/wallet/ecdsa"
	"github/chapool/cosmos-wallet/internal/wallet/fee"
)

var (
	ErrPublicKeyFetch = errors.New("failed to fetch public key")
	ErrSign           = errors.New("failed to sign with ecdsa")
)

type service struct {
	client  ecdsa.Client
	metrics *metrics.Service
}

// NewService creates a new SignerService
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(client ecdsa.Client, m *metrics.Service) (Service, error) {
	if client == nil {
		return nil, errors.New("signing service client is required")
	}

	return &service{
		client:  client,
		metrics: m,
	}, nil
}

// PublicKey fetches the public key for key and path from the signing service
func (s *service) PublicKey(ctx context.Context, key ecdsa.Key, path derivation.Path) ([]byte, error) {
	res, err := s.client.PublicKey(ctx, &ecdsa.PublicKeyArgs{
		DerivationPath: path.Hex(),
		KeyID:          key.ID(),
	})
	s.observe(ecdsa.MethodPublicKey, err)

	if err != nil {
		util.LogFromContext(ctx).Error().Err(err).Str("key", key.String()).Msg("Failed to fetch public key")
		return nil, errors.Wrap(ErrPublicKeyFetch, err.Error())
	}

	return res.PublicKey, nil
}

// SignDigest accepts the signing fee from the caller's attached cycles and
// then requests the signature, paying SignCost. The fee is not refunded when
// the remote call fails.
func (s *service) SignDigest(ctx context.Context, key ecdsa.Key, path derivation.Path, digest [ecdsa.DigestLength]byte) ([]byte, error) {
	log := util.LogFromContext(ctx).With().Str("key", key.String()).Logger()

	accepted := fee.Accept(ctx, ecdsa.SignCost)
	if accepted < ecdsa.SignCost {
		log.Warn().
			Uint64("accepted", accepted).
			Uint64("cost", ecdsa.SignCost).
			Msg("Attached cycles do not cover the signing fee")
	}

	if s.metrics != nil {
		s.metrics.AddFeeAccepted(accepted)
		s.metrics.AddFeePaid(ecdsa.SignCost)
	}

	res, err := s.client.Sign(ctx, &ecdsa.SignArgs{
		MessageHash:    digest[:],
		DerivationPath: path.Hex(),
		KeyID:          key.ID(),
	}, ecdsa.SignCost)
	s.observe(ecdsa.MethodSign, err)

	if err != nil {
		log.Error().Err(err).Msg("Failed to sign digest")
		return nil, errors.Wrap(ErrSign, err.Error())
	}

	return res.Signature, nil
}

func (s *service) observe(method string, err error) {
	if s.metrics != nil {
		s.metrics.ObserveSignerCall(method, err)
	}
}
