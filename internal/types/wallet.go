package types

import (
	"github.com/go-openapi/strfmt"
	"github/chapool/cosmos-wallet/internal/wallet/broadcast"
)

type GetAddressResponse struct {
	// base58 encoded compressed secp256k1 public key
	Address *string `json:"address" validate:"required"`
}

type PostSignMessagePayload struct {
	// exactly 32 bytes, already a digest
	Message *string `json:"message" validate:"required"`
}

type PostSignMessageResponse struct {
	Signature strfmt.Base64 `json:"signature" validate:"required,len=64"`
}

type PostSendTransactionPayload struct {
	Source         *broadcast.RPCServices           `json:"source" validate:"required"`
	Config         *broadcast.RPCConfig             `json:"config,omitempty"`
	RawTransaction *string                          `json:"raw_transaction" validate:"required"`
	Params         *broadcast.SendTransactionConfig `json:"params,omitempty"`
}

type PostSendTransactionResponse struct {
	Signature *string `json:"signature" validate:"required"`
}
