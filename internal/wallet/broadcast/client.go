package broadcast

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

var (
	// MaxNumOfFailingRequests is the request count after which the breaker may open.
	MaxNumOfFailingRequests = 10
	// FailingRatio is the transport failure ratio that opens the breaker.
	FailingRatio = 0.6
)

// Client is the broadcasting RPC service.
type Client interface {
	GetLatestBlockhash(ctx context.Context, source RPCServices) (string, error)
	SendTransaction(ctx context.Context, source RPCServices, cfg *RPCConfig, rawTransaction string, params *SendTransactionConfig) (string, error)
}

// Dialer resolves a broadcast service id to a client.
type Dialer interface {
	Dial(ctx context.Context, serviceID string) (Client, error)
}

// RPCClient reaches one broadcast service over JSON-RPC. Transport failures
// count towards a circuit breaker; answers from the service never do.
type RPCClient struct {
	serviceID string
	client    *rpc.Client
	breaker   *gobreaker.CircuitBreaker
}

type rpcOutcome struct {
	result string
	err    *RPCError
}

func NewRPCClient(ctx context.Context, serviceID string) (*RPCClient, error) {
	client, err := rpc.DialContext(ctx, serviceID)
	if err != nil {
		return nil, &RPCError{Code: CodeTransport, Message: errors.Wrapf(err, "failed to dial broadcast service %s", serviceID).Error()}
	}

	return &RPCClient{
		serviceID: serviceID,
		client:    client,
		breaker:   newCircuitBreaker(serviceID),
	}, nil
}

func newCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: name,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return int(counts.Requests) > MaxNumOfFailingRequests && ratio >= FailingRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn().Str("service", name).Str("from", from.String()).Str("to", to.String()).Msg("Broadcast circuit breaker changed state")
		},
	})
}

func (c *RPCClient) GetLatestBlockhash(ctx context.Context, source RPCServices) (string, error) {
	return c.call(ctx, MethodGetLatestBlockhash, source)
}

func (c *RPCClient) SendTransaction(ctx context.Context, source RPCServices, cfg *RPCConfig, rawTransaction string, params *SendTransactionConfig) (string, error) {
	return c.call(ctx, MethodSendTransaction, source, cfg, rawTransaction, params)
}

func (c *RPCClient) call(ctx context.Context, method string, args ...any) (string, error) {
	res, err := c.breaker.Execute(func() (interface{}, error) {
		var result string
		err := c.client.CallContext(ctx, &result, method, args...)
		if err == nil {
			return rpcOutcome{result: result}, nil
		}

		var rpcErr rpc.Error
		if errors.As(err, &rpcErr) {
			out := &RPCError{Code: rpcErr.ErrorCode(), Message: rpcErr.Error()}
			var dataErr rpc.DataError
			if errors.As(err, &dataErr) {
				out.Data = dataErr.ErrorData()
			}
			return rpcOutcome{err: out}, nil
		}

		// the caller gave up; the upstream is not at fault
		if ctx.Err() != nil {
			return rpcOutcome{err: &RPCError{
				Code:    CodeTransport,
				Message: errors.Wrapf(err, "%s failed", method).Error(),
			}}, nil
		}

		return nil, err
	})
	if err != nil {
		code := CodeTransport
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			code = CodeUnavailable
		}
		return "", &RPCError{Code: code, Message: errors.Wrapf(err, "%s failed", method).Error()}
	}

	out := res.(rpcOutcome)
	if out.err != nil {
		return "", out.err
	}

	return out.result, nil
}

func (c *RPCClient) Close() {
	c.client.Close()
}

// RPCDialer keeps one RPCClient per broadcast service id.
type RPCDialer struct {
	mu      sync.Mutex
	clients map[string]*RPCClient
}

func NewRPCDialer() *RPCDialer {
	return &RPCDialer{clients: make(map[string]*RPCClient)}
}

func (d *RPCDialer) Dial(ctx context.Context, serviceID string) (Client, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if c, ok := d.clients[serviceID]; ok {
		return c, nil
	}

	c, err := NewRPCClient(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("service", serviceID).Msg("Connected to broadcast service")
	d.clients[serviceID] = c

	return c, nil
}

func (d *RPCDialer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for id, c := range d.clients {
		c.Close()
		delete(d.clients, id)
	}
}
