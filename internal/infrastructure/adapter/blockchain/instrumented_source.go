package blockchain

import (
	"context"
	"math/big"

	"github.com/amirhossein-jamali/wallet-api/internal/domain/port/blockchain"
	"github.com/amirhossein-jamali/wallet-api/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSuccess = "success"
	resultError   = "error"
)

// InstrumentedBalanceSource records lookup counts and latency around another
// BalanceSource
type InstrumentedBalanceSource struct {
	next         blockchain.BalanceSource
	timeProvider core.TimeProvider
	lookups      *prometheus.CounterVec
	duration     prometheus.Histogram
}

var _ blockchain.BalanceSource = (*InstrumentedBalanceSource)(nil)

// NewInstrumentedBalanceSource registers the lookup collectors on reg
func NewInstrumentedBalanceSource(next blockchain.BalanceSource, reg prometheus.Registerer, timeProvider core.TimeProvider) *InstrumentedBalanceSource {
	factory := promauto.With(reg)

	return &InstrumentedBalanceSource{
		next:         next,
		timeProvider: timeProvider,
		lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wallet_api",
			Subsystem: "balance",
			Name:      "lookups_total",
			Help:      "Number of on-chain balance lookups by result.",
		}, []string{"result"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wallet_api",
			Subsystem: "balance",
			Name:      "lookup_duration_seconds",
			Help:      "Latency of on-chain balance lookups.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// BalanceAt delegates to the wrapped source
func (s *InstrumentedBalanceSource) BalanceAt(ctx context.Context, address string) (*big.Int, error) {
	start := s.timeProvider.Now()
	wei, err := s.next.BalanceAt(ctx, address)
	s.duration.Observe(s.timeProvider.Since(start).Seconds())

	if err != nil {
		s.lookups.WithLabelValues(resultError).Inc()
		return nil, err
	}
	s.lookups.WithLabelValues(resultSuccess).Inc()
	return wei, nil
}
