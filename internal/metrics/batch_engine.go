package metrics

import (
	"time"

	"github.com/goodnatureofminers/evmquery/internal/evm/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	batchRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "evmquery",
		Subsystem: "batch_engine",
		Name:      "records_total",
		Help:      "Count of produced result records by outcome.",
	}, []string{"kind", "chain", "status"})

	batchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "evmquery",
		Subsystem: "batch_engine",
		Name:      "batch_duration_seconds",
		Help:      "Duration of running a whole batch.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"kind", "chain"})

	batchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "evmquery",
		Subsystem: "batch_engine",
		Name:      "batch_size",
		Help:      "Number of identifiers per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"kind", "chain"})
)

// BatchEngine records batch engine metrics for one chain.
type BatchEngine struct {
	chain model.Chain
}

// NewBatchEngine returns BatchEngine metrics labelled with chain.
func NewBatchEngine(chain model.Chain) *BatchEngine {
	if chain == "" {
		chain = "unknown"
	}
	return &BatchEngine{chain: chain}
}

// ObserveRecord counts one record of the given outcome.
func (m BatchEngine) ObserveRecord(kind model.Kind, status model.Status) {
	batchRecordsTotal.WithLabelValues(string(kind), string(m.chain), string(status)).Inc()
}

// ObserveBatch records the size and duration of a finished batch.
func (m BatchEngine) ObserveBatch(kind model.Kind, size int, started time.Time) {
	batchDuration.WithLabelValues(string(kind), string(m.chain)).Observe(time.Since(started).Seconds())
	batchSize.WithLabelValues(string(kind), string(m.chain)).Observe(float64(size))
}
