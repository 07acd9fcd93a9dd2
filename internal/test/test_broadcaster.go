package test

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/rpc"
	"github/chapool/cosmos-wallet/internal/wallet/broadcast"
)

// DefaultBlockhash is the base58 form of a non-zero 32 byte block hash.
const DefaultBlockhash = "4uQeVj5tqViQh7yWWGStvkEG1Zmhx6uasJtWCJziofM"

// Broadcaster is an in-process broadcast service answering cos_* JSON-RPC
// calls and recording them.
type Broadcaster struct {
	URL string

	mu             sync.Mutex
	blockhash      string
	signature      string
	blockhashErr   *broadcast.RPCError
	sendErr        *broadcast.RPCError
	blockhashCalls int
	sent           []string
	sources        []broadcast.RPCServices
	params         []*broadcast.SendTransactionConfig
}

func WithTestBroadcaster(t *testing.T, closure func(b *Broadcaster)) {
	t.Helper()

	closure(NewTestBroadcaster(t))
}

func NewTestBroadcaster(t *testing.T) *Broadcaster {
	t.Helper()

	b := &Broadcaster{
		blockhash: DefaultBlockhash,
		signature: "tx-signature",
	}

	srv := rpc.NewServer()
	if err := srv.RegisterName("cos", &broadcasterAPI{b: b}); err != nil {
		t.Fatalf("failed to register broadcaster: %v", err)
	}

	httpSrv := httptest.NewServer(srv)
	b.URL = httpSrv.URL

	t.Cleanup(func() {
		httpSrv.Close()
		srv.Stop()
	})

	return b
}

func (b *Broadcaster) SetBlockhash(hash string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.blockhash = hash
}

func (b *Broadcaster) SetSignature(sig string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.signature = sig
}

func (b *Broadcaster) FailBlockhash(err *broadcast.RPCError) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.blockhashErr = err
}

func (b *Broadcaster) FailSend(err *broadcast.RPCError) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sendErr = err
}

func (b *Broadcaster) BlockhashCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.blockhashCalls
}

// Sent returns the raw transactions received by cos_sendTransaction.
func (b *Broadcaster) Sent() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.sent...)
}

func (b *Broadcaster) Sources() []broadcast.RPCServices {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]broadcast.RPCServices(nil), b.sources...)
}

func (b *Broadcaster) Params() []*broadcast.SendTransactionConfig {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*broadcast.SendTransactionConfig(nil), b.params...)
}

type broadcasterAPI struct {
	b *Broadcaster
}

func (a *broadcasterAPI) GetLatestBlockhash(_ context.Context, source broadcast.RPCServices) (string, error) {
	a.b.mu.Lock()
	defer a.b.mu.Unlock()

	a.b.blockhashCalls++
	a.b.sources = append(a.b.sources, source)
	if a.b.blockhashErr != nil {
		return "", a.b.blockhashErr
	}

	return a.b.blockhash, nil
}

func (a *broadcasterAPI) SendTransaction(_ context.Context, source broadcast.RPCServices, _ *broadcast.RPCConfig, rawTransaction string, params *broadcast.SendTransactionConfig) (string, error) {
	a.b.mu.Lock()
	defer a.b.mu.Unlock()

	a.b.sent = append(a.b.sent, rawTransaction)
	a.b.sources = append(a.b.sources, source)
	a.b.params = append(a.b.params, params)
	if a.b.sendErr != nil {
		return "", a.b.sendErr
	}

	return a.b.signature, nil
}
