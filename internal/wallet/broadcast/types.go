package broadcast

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	MethodGetLatestBlockhash = "cos_getLatestBlockhash"
	MethodSendTransaction    = "cos_sendTransaction"
)

// Codes used for failures that happen before the broadcast service answers.
const (
	CodeTransport   = -32000
	CodeUnavailable = -32001
)

var ErrInvalidSource = errors.New("invalid rpc source")

// RPCAPI is an explicit provider endpoint.
type RPCAPI struct {
	URL     string            `json:"url" validate:"required,url"`
	Headers map[string]string `json:"headers,omitempty"`
}

// RPCServices selects which upstream providers the broadcast service uses.
// Exactly one of the fields is set.
type RPCServices struct {
	Cluster   *Cluster `json:"cluster,omitempty"`
	Providers []string `json:"providers,omitempty"`
	Custom    []RPCAPI `json:"custom,omitempty" validate:"omitempty,dive"`
}

func (s RPCServices) Validate() error {
	set := 0
	if s.Cluster != nil {
		set++
	}
	if len(s.Providers) > 0 {
		set++
	}
	if len(s.Custom) > 0 {
		set++
	}

	if set != 1 {
		return errors.Wrap(ErrInvalidSource, "exactly one of cluster, providers or custom must be set")
	}

	return nil
}

// ConsensusStrategy tells the broadcast service how many provider answers must agree.
type ConsensusStrategy struct {
	Total *uint8 `json:"total,omitempty"`
	Min   uint8  `json:"min"`
}

// RPCConfig is forwarded to the broadcast service untouched.
type RPCConfig struct {
	ResponseSizeEstimate *uint64            `json:"response_size_estimate,omitempty"`
	ResponseConsensus    *ConsensusStrategy `json:"response_consensus,omitempty"`
}

// SendTransactionConfig is forwarded to the broadcast service untouched.
type SendTransactionConfig struct {
	Mode       string  `json:"mode,omitempty" validate:"omitempty,oneof=sync async commit"`
	MaxRetries *uint64 `json:"max_retries,omitempty"`
}

// RPCError is a structured failure reported by, or on the way to, the
// broadcast service.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Error returns the message alone so the error survives a JSON-RPC round trip.
func (e *RPCError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("rpc error %d", e.Code)
	}

	return e.Message
}

// ErrorCode and ErrorData let an rpc.Server emit the error unchanged.
func (e *RPCError) ErrorCode() int {
	return e.Code
}

func (e *RPCError) ErrorData() any {
	return e.Data
}
