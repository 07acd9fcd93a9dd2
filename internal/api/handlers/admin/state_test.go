package admin_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/cosmos-wallet/internal/api"
	"github/chapool/cosmos-wallet/internal/auth"
	"github/chapool/cosmos-wallet/internal/test"
	"github/chapool/cosmos-wallet/internal/types"
	"github/chapool/cosmos-wallet/internal/wallet/ecdsa"
)

var operator = auth.Principal{0xaa, 0xbb}

func TestGetState(t *testing.T) {
	test.WithTestServerAndBroadcaster(t, func(s *api.Server, b *test.Broadcaster) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/admin/state", nil, test.HeadersWithAuth(t, s, operator, auth.RoleAdmin))
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var body types.GetStateResponse
		test.ParseResponseBody(t, res, &body)
		assert.Equal(t, b.URL, *body.BroadcastServiceID)
		assert.Equal(t, ecdsa.TestKey1.String(), *body.ECDSAKey)
	})
}

func TestGetStateRequiresAdmin(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/admin/state", nil, test.HeadersWithAuth(t, s, operator, auth.RoleUser))
		require.Equal(t, http.StatusForbidden, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "GET", "/api/v1/admin/state", nil, nil)
		require.Equal(t, http.StatusUnauthorized, res.Result().StatusCode)
	})
}

func TestPatchState(t *testing.T) {
	test.WithTestServerAndBroadcaster(t, func(s *api.Server, b *test.Broadcaster) {
		headers := test.HeadersWithAuth(t, s, operator, auth.RoleAdmin)

		res := test.PerformRequest(t, s, "PATCH", "/api/v1/admin/state", test.GenericPayload{
			"ecdsa_key": "key_1",
		}, headers)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var body types.GetStateResponse
		test.ParseResponseBody(t, res, &body)
		assert.Equal(t, b.URL, *body.BroadcastServiceID)
		assert.Equal(t, "key_1", *body.ECDSAKey)

		st, err := s.State.Get()
		require.NoError(t, err)
		assert.Equal(t, ecdsa.ProductionKey1, st.ECDSAKey)
	})
}

func TestPatchStateRejectsEmptyValues(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		headers := test.HeadersWithAuth(t, s, operator, auth.RoleAdmin)

		before, err := s.State.Get()
		require.NoError(t, err)

		res := test.PerformRequest(t, s, "PATCH", "/api/v1/admin/state", test.GenericPayload{
			"broadcast_service_id": "",
			"ecdsa_key":            "custom_key",
		}, headers)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		after, err := s.State.Get()
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}
