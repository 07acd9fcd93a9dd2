package broadcast

import (
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const maxPort = 65535

var ErrInvalidCluster = errors.New("invalid cluster")

type ClusterKind uint8

const (
	ClusterCustom ClusterKind = iota
	ClusterTestnet
	ClusterMainnet
)

const (
	testnetURL = "https://neutron-testnet-rpc.polkachu.com"
	mainnetURL = "https://neutron-rpc.polkachu.com/"
)

// Cluster names a network endpoint: testnet, mainnet or a custom URL.
type Cluster struct {
	Kind  ClusterKind
	url   string
	wsURL string
}

var (
	Testnet = Cluster{Kind: ClusterTestnet}
	Mainnet = Cluster{Kind: ClusterMainnet}
)

// ParseCluster accepts "t"/"testnet", "m"/"mainnet" (any case) or an http(s)
// URL. For URLs the websocket URL switches the scheme to ws/wss and bumps an
// explicit port by one.
func ParseCluster(s string) (Cluster, error) {
	switch strings.ToLower(s) {
	case "t", "testnet":
		return Testnet, nil
	case "m", "mainnet":
		return Mainnet, nil
	}

	if !strings.HasPrefix(s, "http") {
		return Cluster{}, errors.Wrapf(ErrInvalidCluster, "%q", s)
	}

	u, err := url.Parse(s)
	if err != nil {
		return Cluster{}, errors.Wrapf(ErrInvalidCluster, "%q: %v", s, err)
	}

	ws := *u
	if port := u.Port(); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n+1 > maxPort {
			return Cluster{}, errors.Wrapf(ErrInvalidCluster, "%q: bad port", s)
		}
		ws.Host = net.JoinHostPort(u.Hostname(), strconv.Itoa(n+1))
	}

	ws.Scheme = "ws"
	if u.Scheme == "https" {
		ws.Scheme = "wss"
	}

	return Cluster{Kind: ClusterCustom, url: s, wsURL: ws.String()}, nil
}

// URL returns the RPC endpoint of the cluster.
func (c Cluster) URL() string {
	switch c.Kind {
	case ClusterTestnet:
		return testnetURL
	case ClusterMainnet:
		return mainnetURL
	default:
		return c.url
	}
}

// WSURL returns the websocket endpoint of the cluster.
func (c Cluster) WSURL() string {
	switch c.Kind {
	case ClusterTestnet:
		return testnetURL
	case ClusterMainnet:
		return mainnetURL
	default:
		return c.wsURL
	}
}

// Host returns the host of the RPC endpoint, empty if it has none.
func (c Cluster) Host() string {
	u, err := url.Parse(c.URL())
	if err != nil {
		return ""
	}

	return u.Hostname()
}

func (c Cluster) String() string {
	switch c.Kind {
	case ClusterTestnet:
		return "testnet"
	case ClusterMainnet:
		return "mainnet"
	default:
		return c.url
	}
}

func (c Cluster) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Cluster) UnmarshalText(text []byte) error {
	parsed, err := ParseCluster(string(text))
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}
