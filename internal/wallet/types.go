package wallet

import (
	"context"

	"github/chapool/cosmos-wallet/internal/auth"
	"github/chapool/cosmos-wallet/internal/wallet/broadcast"
)

const (
	OperationAddress         = "address"
	OperationSignMessage     = "sign_message"
	OperationSendTransaction = "send_transaction"
)

// SendTransactionRequest carries a serialized unsigned transaction and the
// broadcast options forwarded to the broadcast service.
type SendTransactionRequest struct {
	Source         broadcast.RPCServices
	Config         *broadcast.RPCConfig
	RawTransaction string
	Params         *broadcast.SendTransactionConfig
}

// Service is the caller facing wallet. Every operation rejects the anonymous
// caller before touching state or any remote service.
type Service interface {
	// Address returns the base58 public key derived for caller.
	Address(ctx context.Context, caller auth.Principal) (string, error)

	// SignMessage signs message, which must already be a 32 byte digest.
	SignMessage(ctx context.Context, caller auth.Principal, message []byte) ([]byte, error)

	// SendTransaction fills a missing block reference, signs the transaction
	// with the caller's key and hands it to the broadcast service.
	SendTransaction(ctx context.Context, caller auth.Principal, req *SendTransactionRequest) (string, error)
}
