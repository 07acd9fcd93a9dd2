package wallet_test

import (
	"net/http"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/cosmos-wallet/internal/api"
	"github/chapool/cosmos-wallet/internal/api/middleware"
	"github/chapool/cosmos-wallet/internal/auth"
	"github/chapool/cosmos-wallet/internal/test"
	"github/chapool/cosmos-wallet/internal/types"
	"github/chapool/cosmos-wallet/internal/wallet/address"
	"github/chapool/cosmos-wallet/internal/wallet/broadcast"
	"github/chapool/cosmos-wallet/internal/wallet/transaction"
)

var alice = auth.Principal{0x11, 0x22, 0x33, 0x44}

func unsignedTransaction(t *testing.T) string {
	t.Helper()

	tx := transaction.New(transaction.Message{
		NumRequiredSignatures: 1,
		ChainID:               "neutron-1",
		AccountNumber:         1,
		Sequence:              9,
	})

	raw, err := tx.Encode()
	require.NoError(t, err)

	return raw
}

func getAddress(t *testing.T, s *api.Server, headers http.Header) string {
	t.Helper()

	res := test.PerformRequest(t, s, "GET", "/api/v1/wallet/address", nil, headers)
	require.Equal(t, http.StatusOK, res.Result().StatusCode)

	var body types.GetAddressResponse
	test.ParseResponseBody(t, res, &body)
	require.NotNil(t, body.Address)

	return *body.Address
}

func TestGetAddress(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		headers := test.HeadersWithAuth(t, s, alice, auth.RoleUser)

		first := getAddress(t, s, headers)
		second := getAddress(t, s, headers)
		assert.Equal(t, first, second)

		other := getAddress(t, s, test.HeadersWithAuth(t, s, auth.Principal{0x01}, auth.RoleUser))
		assert.NotEqual(t, first, other)

		_, err := address.ParsePublicKey(first)
		require.NoError(t, err)
	})
}

func TestGetAddressAnonymous(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/wallet/address", nil, nil)
		require.Equal(t, http.StatusUnauthorized, res.Result().StatusCode)

		var body types.HTTPError
		test.ParseResponseBody(t, res, &body)
		assert.Equal(t, types.PublicHTTPErrorTypeANONYMOUSCALLER, body.Type)
	})
}

func TestGetAddressInvalidToken(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		headers := http.Header{}
		headers.Set(echo.HeaderAuthorization, "Bearer not-a-token")

		res := test.PerformRequest(t, s, "GET", "/api/v1/wallet/address", nil, headers)
		require.Equal(t, http.StatusUnauthorized, res.Result().StatusCode)
	})
}

func TestAnonymousRejectedBeforeBodyValidation(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		for _, path := range []string{"/api/v1/wallet/sign-message", "/api/v1/wallet/send-transaction"} {
			res := test.PerformRequest(t, s, "POST", path, test.GenericPayload{"unexpected": 1}, nil)
			require.Equal(t, http.StatusUnauthorized, res.Result().StatusCode, path)

			var body types.HTTPError
			test.ParseResponseBody(t, res, &body)
			assert.Equal(t, types.PublicHTTPErrorTypeANONYMOUSCALLER, body.Type, path)
		}
	})
}

func TestPostSignMessage(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		headers := test.HeadersWithAuth(t, s, alice, auth.RoleUser)
		message := "0123456789abcdef0123456789abcdef"

		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/sign-message", test.GenericPayload{
			"message": message,
		}, headers)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		assert.NotEmpty(t, res.Header().Get(middleware.HeaderXAcceptedCycles))

		var body types.PostSignMessageResponse
		test.ParseResponseBody(t, res, &body)
		require.Len(t, body.Signature, 64)

		pk, err := address.ParsePublicKey(getAddress(t, s, headers))
		require.NoError(t, err)
		assert.True(t, crypto.VerifySignature(pk.Bytes(), []byte(message), body.Signature))
	})
}

func TestPostSignMessageWrongLength(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		headers := test.HeadersWithAuth(t, s, alice, auth.RoleUser)

		// hex of a sha256 digest is 64 bytes
		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/sign-message", test.GenericPayload{
			"message": "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
		}, headers)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var body types.HTTPError
		test.ParseResponseBody(t, res, &body)
		assert.Equal(t, types.PublicHTTPErrorTypeINVALIDMESSAGELENGTH, body.Type)
	})
}

func TestPostSignMessageInvalidCycles(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		headers := test.HeadersWithAuth(t, s, alice, auth.RoleUser)
		headers.Set(middleware.HeaderXAttachedCycles, "-1")

		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/sign-message", test.GenericPayload{
			"message": "0123456789abcdef0123456789abcdef",
		}, headers)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}

func TestPostSendTransaction(t *testing.T) {
	test.WithTestServerAndBroadcaster(t, func(s *api.Server, b *test.Broadcaster) {
		b.SetSignature("tx-sig-1")
		headers := test.HeadersWithAuth(t, s, alice, auth.RoleUser)

		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/send-transaction", test.GenericPayload{
			"source":          map[string]interface{}{"cluster": "testnet"},
			"raw_transaction": unsignedTransaction(t),
			"params":          map[string]interface{}{"mode": "sync"},
		}, headers)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var body types.PostSendTransactionResponse
		test.ParseResponseBody(t, res, &body)
		require.NotNil(t, body.Signature)
		assert.Equal(t, "tx-sig-1", *body.Signature)
		assert.Equal(t, 1, b.BlockhashCalls())

		sent := b.Sent()
		require.Len(t, sent, 1)
		tx, err := transaction.Parse(sent[0])
		require.NoError(t, err)
		assert.True(t, tx.IsSigned())
		assert.Equal(t, test.DefaultBlockhash, tx.Message.RecentBlockhash.String())
	})
}

func TestPostSendTransactionBroadcastError(t *testing.T) {
	test.WithTestServerAndBroadcaster(t, func(s *api.Server, b *test.Broadcaster) {
		b.FailSend(&broadcast.RPCError{Code: -32005, Message: "out of gas", Data: "details"})
		headers := test.HeadersWithAuth(t, s, alice, auth.RoleUser)

		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/send-transaction", test.GenericPayload{
			"source":          map[string]interface{}{"providers": []string{"polkachu"}},
			"raw_transaction": unsignedTransaction(t),
		}, headers)
		require.Equal(t, http.StatusBadGateway, res.Result().StatusCode)

		var body types.RPCErrorResponse
		test.ParseResponseBody(t, res, &body)
		assert.Equal(t, -32005, body.Code)
		assert.Equal(t, "out of gas", body.Message)
		assert.Equal(t, "details", body.Data)
	})
}

func TestPostSendTransactionMalformed(t *testing.T) {
	test.WithTestServerAndBroadcaster(t, func(s *api.Server, b *test.Broadcaster) {
		headers := test.HeadersWithAuth(t, s, alice, auth.RoleUser)

		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/send-transaction", test.GenericPayload{
			"source":          map[string]interface{}{"cluster": "mainnet"},
			"raw_transaction": "%%%",
		}, headers)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
		assert.Zero(t, b.BlockhashCalls())
	})
}

func TestPostSendTransactionMissingSource(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		headers := test.HeadersWithAuth(t, s, alice, auth.RoleUser)

		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/send-transaction", test.GenericPayload{
			"raw_transaction": unsignedTransaction(t),
		}, headers)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}
