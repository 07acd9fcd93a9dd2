package broadcast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/cosmos-wallet/internal/wallet/broadcast"
)

func TestParseClusterNamed(t *testing.T) {
	for _, s := range []string{"t", "testnet", "TESTNET"} {
		c, err := broadcast.ParseCluster(s)
		require.NoError(t, err)
		assert.Equal(t, broadcast.Testnet, c)
		assert.Equal(t, "testnet", c.String())
	}

	for _, s := range []string{"m", "mainnet", "Mainnet"} {
		c, err := broadcast.ParseCluster(s)
		require.NoError(t, err)
		assert.Equal(t, broadcast.Mainnet, c)
	}
}

func TestParseClusterCustom(t *testing.T) {
	tests := []struct {
		url   string
		wsURL string
	}{
		{"http://my-url.com:7000/", "ws://my-url.com:7001/"},
		{"http://my-url.com/", "ws://my-url.com/"},
		{"https://my-url.com:7000/", "wss://my-url.com:7001/"},
		{"https://my-url.com/", "wss://my-url.com/"},
		{"http://my-url.com/FooBar", "ws://my-url.com/FooBar"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			c, err := broadcast.ParseCluster(tt.url)
			require.NoError(t, err)
			assert.Equal(t, broadcast.ClusterCustom, c.Kind)
			assert.Equal(t, tt.url, c.URL())
			assert.Equal(t, tt.wsURL, c.WSURL())
			assert.Equal(t, tt.url, c.String())
			assert.Equal(t, "my-url.com", c.Host())
		})
	}
}

func TestParseClusterIPv6(t *testing.T) {
	c, err := broadcast.ParseCluster("http://[::1]:8080/")
	require.NoError(t, err)
	assert.Equal(t, "ws://[::1]:8081/", c.WSURL())
}

func TestParseClusterInvalid(t *testing.T) {
	for _, s := range []string{"devnet", "httq://my_custom_url.test.net", "", "http://my-url.com:65535/"} {
		_, err := broadcast.ParseCluster(s)
		require.ErrorIs(t, err, broadcast.ErrInvalidCluster, s)
	}
}

func TestClusterText(t *testing.T) {
	var c broadcast.Cluster
	require.NoError(t, c.UnmarshalText([]byte("https://rpc.example.org")))

	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "https://rpc.example.org", string(text))
}
