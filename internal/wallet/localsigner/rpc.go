package localsigner

import (
	"context"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"github/chapool/cosmos-wallet/internal/wallet/ecdsa"
)

// RPCNamespace is the JSON-RPC namespace served by the emulator.
const RPCNamespace = "ecdsa"

// RPCService exposes Signer as ecdsa_publicKey and ecdsa_sign.
type RPCService struct {
	signer *Signer
}

func (r *RPCService) PublicKey(ctx context.Context, args ecdsa.PublicKeyArgs) (*ecdsa.PublicKeyResponse, error) {
	return r.signer.PublicKey(ctx, &args)
}

func (r *RPCService) Sign(ctx context.Context, args ecdsa.SignArgs, payment hexutil.Uint64) (*ecdsa.SignResponse, error) {
	return r.signer.Sign(ctx, &args, uint64(payment))
}

// NewRPCServer returns a JSON-RPC server, usable as an http.Handler,
// serving s.
func NewRPCServer(s *Signer) (*rpc.Server, error) {
	srv := rpc.NewServer()
	if err := srv.RegisterName(RPCNamespace, &RPCService{signer: s}); err != nil {
		return nil, errors.Wrap(err, "failed to register signer service")
	}

	return srv, nil
}
