package probe

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/cosmos-wallet/internal/config"
)

// probeURL points at the management endpoint of the locally running server.
func probeURL(cfg config.Server, path string) string {
	host, port, err := net.SplitHostPort(cfg.Echo.ListenAddress)
	if err != nil {
		host, port = "", strings.TrimPrefix(cfg.Echo.ListenAddress, ":")
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}

	return "http://" + net.JoinHostPort(host, port) + path
}

func probe(cfg config.Server, path string, timeout time.Duration, verbose bool) error {
	url := probeURL(cfg, path)

	res, err := resty.New().
		SetTimeout(timeout).
		R().
		Get(url)
	if err != nil {
		return errors.Wrapf(err, "probe %s failed", url)
	}

	if verbose {
		log.Info().Str("url", url).Int("status", res.StatusCode()).Str("body", res.String()).Msg("Probe response")
	}

	if res.StatusCode() != http.StatusOK {
		return errors.Errorf("probe %s returned %d: %s", url, res.StatusCode(), res.String())
	}

	return nil
}
