package probe

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/cosmos-wallet/internal/config"
)

func TestProbeURL(t *testing.T) {
	cfg := config.Server{}

	cfg.Echo.ListenAddress = ":8080"
	assert.Equal(t, "http://127.0.0.1:8080/-/ready", probeURL(cfg, "/-/ready"))

	cfg.Echo.ListenAddress = "0.0.0.0:9000"
	assert.Equal(t, "http://127.0.0.1:9000/-/healthy", probeURL(cfg, "/-/healthy"))

	cfg.Echo.ListenAddress = "10.0.0.2:9000"
	assert.Equal(t, "http://10.0.0.2:9000/-/healthy", probeURL(cfg, "/-/healthy"))
}

func TestProbeStatus(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusOK)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(int(status.Load()))
	}))
	defer srv.Close()

	cfg := config.Server{}
	cfg.Echo.ListenAddress = srv.Listener.Addr().String()

	require.NoError(t, probe(cfg, "/-/ready", time.Second, true))

	status.Store(521)
	require.Error(t, probe(cfg, "/-/ready", time.Second, false))
}
