package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "wallet"

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Service keeps the collectors of the wallet and the registry they live in.
type Service struct {
	Registry *prometheus.Registry

	signerCalls      *prometheus.CounterVec
	feeCycles        *prometheus.CounterVec
	blockhashQueries *prometheus.CounterVec
	broadcasts       *prometheus.CounterVec
	walletOperations *prometheus.CounterVec
}

// New creates a Service with its own registry, including the Go and
// process collectors.
func New() *Service {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &Service{
		Registry: reg,
		signerCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signer_calls_total",
			Help:      "Calls to the threshold signing service by method and outcome.",
		}, []string{"method", "outcome"}),
		feeCycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signing_fee_cycles_total",
			Help:      "Cycles accepted from callers and paid to the signing service.",
		}, []string{"kind"}),
		blockhashQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blockhash_queries_total",
			Help:      "Latest blockhash lookups issued for unpinned transactions.",
		}, []string{"outcome"}),
		broadcasts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "broadcasts_total",
			Help:      "Signed transactions forwarded to the broadcast service.",
		}, []string{"outcome"}),
		walletOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Public wallet operations by name and outcome.",
		}, []string{"operation", "outcome"}),
	}

	reg.MustRegister(
		s.signerCalls,
		s.feeCycles,
		s.blockhashQueries,
		s.broadcasts,
		s.walletOperations,
	)

	return s
}

func outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}

	return OutcomeSuccess
}

func (s *Service) ObserveSignerCall(method string, err error) {
	s.signerCalls.WithLabelValues(method, outcome(err)).Inc()
}

func (s *Service) AddFeeAccepted(cycles uint64) {
	s.feeCycles.WithLabelValues("accepted").Add(float64(cycles))
}

func (s *Service) AddFeePaid(cycles uint64) {
	s.feeCycles.WithLabelValues("paid").Add(float64(cycles))
}

func (s *Service) ObserveBlockhashQuery(err error) {
	s.blockhashQueries.WithLabelValues(outcome(err)).Inc()
}

func (s *Service) ObserveBroadcast(err error) {
	s.broadcasts.WithLabelValues(outcome(err)).Inc()
}

func (s *Service) ObserveOperation(operation string, err error) {
	s.walletOperations.WithLabelValues(operation, outcome(err)).Inc()
}
