package ecdsa

import (
	"context"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	MethodPublicKey = "ecdsa_publicKey"
	MethodSign      = "ecdsa_sign"
)

// Client is the remote threshold ECDSA capability.
type Client interface {
	PublicKey(ctx context.Context, args *PublicKeyArgs) (*PublicKeyResponse, error)
	// Sign requests a signature, attaching payment cycles to the call.
	Sign(ctx context.Context, args *SignArgs, payment uint64) (*SignResponse, error)
}

// RPCClient reaches the signing service over JSON-RPC.
type RPCClient struct {
	url    string
	client *rpc.Client
}

// NewRPCClient dials the signing service at url.
func NewRPCClient(ctx context.Context, url string) (*RPCClient, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial signing service %s", url)
	}

	log.Debug().Str("url", url).Msg("Connected to signing service")

	return &RPCClient{
		url:    url,
		client: client,
	}, nil
}

func (c *RPCClient) PublicKey(ctx context.Context, args *PublicKeyArgs) (*PublicKeyResponse, error) {
	var res PublicKeyResponse
	if err := c.client.CallContext(ctx, &res, MethodPublicKey, args); err != nil {
		return nil, errors.Wrapf(err, "%s failed", MethodPublicKey)
	}

	return &res, nil
}

func (c *RPCClient) Sign(ctx context.Context, args *SignArgs, payment uint64) (*SignResponse, error) {
	var res SignResponse
	if err := c.client.CallContext(ctx, &res, MethodSign, args, hexutil.Uint64(payment)); err != nil {
		return nil, errors.Wrapf(err, "%s failed", MethodSign)
	}

	return &res, nil
}

func (c *RPCClient) Close() {
	c.client.Close()
}
