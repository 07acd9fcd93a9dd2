package wallet

import (
	"context"

	"github.com/pkg/errors"
	"github/chapool/cosmos-wallet/internal/auth"
	"github/chapool/cosmos-wallet/internal/metrics"
	"github/chapool/cosmos-wallet/internal/util"
	"github/chapool/cosmos-wallet/internal/wallet/address"
	"github/chapool/cosmos-wallet/internal/wallet/broadcast"
	"github/chapool/cosmos-wallet/internal/wallet/derivation"
	"github/chapool/cosmos-wallet/internal/wallet/ecdsa"
	"github/chapool/cosmos-wallet/internal/wallet/signer"
	"github/chapool/cosmos-wallet/internal/wallet/state"
	"github/chapool/cosmos-wallet/internal/wallet/transaction"
)

var ErrInvalidMessageLength = errors.New("message must be exactly 32 bytes")

type service struct {
	state   *state.Container
	signer  signer.Service
	dialer  broadcast.Dialer
	metrics *metrics.Service
}

// NewService creates a new WalletService
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(st *state.Container, signerService signer.Service, dialer broadcast.Dialer, m *metrics.Service) (Service, error) {
	if st == nil {
		return nil, errors.New("state container is required")
	}
	if signerService == nil {
		return nil, errors.New("signer service is required")
	}
	if dialer == nil {
		return nil, errors.New("broadcast dialer is required")
	}

	return &service{
		state:   st,
		signer:  signerService,
		dialer:  dialer,
		metrics: m,
	}, nil
}

func (s *service) Address(ctx context.Context, caller auth.Principal) (_ string, err error) {
	defer func() { s.observe(OperationAddress, err) }()

	if err := auth.ValidateNotAnonymous(caller); err != nil {
		return "", err
	}

	key, err := s.key()
	if err != nil {
		return "", err
	}

	raw, err := s.signer.PublicKey(ctx, key, derivation.ForCaller(caller))
	if err != nil {
		return "", err
	}

	pk, err := address.PublicKeyFromBytes(raw)
	if err != nil {
		return "", err
	}

	return pk.String(), nil
}

func (s *service) SignMessage(ctx context.Context, caller auth.Principal, message []byte) (_ []byte, err error) {
	defer func() { s.observe(OperationSignMessage, err) }()

	if err := auth.ValidateNotAnonymous(caller); err != nil {
		return nil, err
	}

	if len(message) != ecdsa.DigestLength {
		return nil, errors.Wrapf(ErrInvalidMessageLength, "got %d bytes", len(message))
	}

	key, err := s.key()
	if err != nil {
		return nil, err
	}

	var digest [ecdsa.DigestLength]byte
	copy(digest[:], message)

	return s.signer.SignDigest(ctx, key, derivation.ForCaller(caller), digest)
}

func (s *service) SendTransaction(ctx context.Context, caller auth.Principal, req *SendTransactionRequest) (_ string, err error) {
	defer func() { s.observe(OperationSendTransaction, err) }()

	if err := auth.ValidateNotAnonymous(caller); err != nil {
		return "", err
	}

	var serviceID string
	if err := s.state.Read(func(st state.State) { serviceID = st.BroadcastServiceID }); err != nil {
		return "", err
	}

	log := util.LogFromContext(ctx).With().
		Str("caller", caller.String()).
		Str("broadcast_service", serviceID).
		Logger()

	tx, err := transaction.Parse(req.RawTransaction)
	if err != nil {
		return "", err
	}

	if err := req.Source.Validate(); err != nil {
		return "", err
	}

	client, err := s.dialer.Dial(ctx, serviceID)
	if err != nil {
		return "", err
	}

	if tx.Message.RecentBlockhash.IsZero() {
		latest, err := client.GetLatestBlockhash(ctx, req.Source)
		s.observeBlockhashQuery(err)
		if err != nil {
			log.Error().Err(err).Msg("Failed to fetch latest blockhash")
			return "", err
		}

		hash, err := transaction.ParseBlockHash(latest)
		if err != nil {
			return "", err
		}

		tx.Message.RecentBlockhash = hash
		log.Debug().Str("blockhash", hash.String()).Msg("Filled recent blockhash")
	}

	key, err := s.key()
	if err != nil {
		return "", err
	}

	digest, err := tx.MessageData()
	if err != nil {
		return "", err
	}

	raw, err := s.signer.SignDigest(ctx, key, derivation.ForCaller(caller), digest)
	if err != nil {
		return "", err
	}

	sig, err := transaction.SignatureFromBytes(raw)
	if err != nil {
		return "", err
	}

	if err := tx.AddSignature(0, sig); err != nil {
		return "", err
	}

	encoded, err := tx.Encode()
	if err != nil {
		return "", err
	}

	res, err := client.SendTransaction(ctx, req.Source, req.Config, encoded, req.Params)
	s.observeBroadcast(err)
	if err != nil {
		log.Warn().Err(err).Msg("Broadcast service rejected transaction")
		return "", err
	}

	log.Info().Str("signature", res).Msg("Transaction sent")

	return res, nil
}

func (s *service) key() (ecdsa.Key, error) {
	var key ecdsa.Key
	if err := s.state.Read(func(st state.State) { key = st.ECDSAKey }); err != nil {
		return ecdsa.Key{}, err
	}

	return key, nil
}

func (s *service) observe(operation string, err error) {
	if s.metrics != nil {
		s.metrics.ObserveOperation(operation, err)
	}
}

func (s *service) observeBlockhashQuery(err error) {
	if s.metrics != nil {
		s.metrics.ObserveBlockhashQuery(err)
	}
}

func (s *service) observeBroadcast(err error) {
	if s.metrics != nil {
		s.metrics.ObserveBroadcast(err)
	}
}
