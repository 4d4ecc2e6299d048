package metrics

import (
	"time"

	"github.com/goodnatureofminers/ctimdex-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingesterFetchMissingTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ctimdex",
		Subsystem: "ingester",
		Name:      "fetch_missing_total",
		Help:      "Count of attempts to discover unindexed ledger indexes.",
	}, []string{"mode", "network", "status"})

	ingesterFetchMissingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ctimdex",
		Subsystem: "ingester",
		Name:      "fetch_missing_duration_seconds",
		Help:      "Duration of discovering unindexed ledger indexes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"mode", "network", "status"})

	ingesterProcessBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ctimdex",
		Subsystem: "ingester",
		Name:      "process_batch_total",
		Help:      "Count of ledger batches processed.",
	}, []string{"mode", "network", "status"})

	ingesterProcessBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ctimdex",
		Subsystem: "ingester",
		Name:      "process_batch_duration_seconds",
		Help:      "Duration of processing a ledger batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"mode", "network", "status"})

	ingesterProcessBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ctimdex",
		Subsystem: "ingester",
		Name:      "process_batch_size",
		Help:      "Number of ledgers processed per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"mode", "network"})

	ingesterProcessLedgerTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ctimdex",
		Subsystem: "ingester",
		Name:      "process_ledger_total",
		Help:      "Count of individual ledgers processed.",
	}, []string{"mode", "network", "status"})

	ingesterLastLedgerIndex = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "ctimdex",
		Subsystem: "ingester",
		Name:      "last_ledger_index",
		Help:      "Most recently processed ledger index.",
	}, []string{"mode", "network"})
)

// Ingester tracks metrics for a ledger ingestion pipeline. Mode is
// "follower" or "backfill".
type Ingester struct {
	mode    string
	network model.Network
}

// NewIngester constructs an Ingester collector for a pipeline mode.
func NewIngester(mode string, network model.Network) *Ingester {
	if mode == "" {
		mode = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Ingester{mode: mode, network: network}
}

func (m Ingester) status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// ObserveFetchMissing records a discovery attempt outcome and duration.
func (m Ingester) ObserveFetchMissing(err error, started time.Time) {
	status := m.status(err)
	ingesterFetchMissingTotal.WithLabelValues(m.mode, string(m.network), status).Inc()
	ingesterFetchMissingDuration.WithLabelValues(m.mode, string(m.network), status).Observe(time.Since(started).Seconds())
}

// ObserveProcessBatch records a batch outcome, size and duration.
func (m Ingester) ObserveProcessBatch(err error, ledgers int, started time.Time) {
	status := m.status(err)
	ingesterProcessBatchTotal.WithLabelValues(m.mode, string(m.network), status).Inc()
	ingesterProcessBatchDuration.WithLabelValues(m.mode, string(m.network), status).Observe(time.Since(started).Seconds())
	ingesterProcessBatchSize.WithLabelValues(m.mode, string(m.network)).Observe(float64(ledgers))
}

// ObserveProcessLedger records a single ledger outcome.
func (m Ingester) ObserveProcessLedger(err error, ledgerIndex uint32, started time.Time) {
	status := m.status(err)
	ingesterProcessLedgerTotal.WithLabelValues(m.mode, string(m.network), status).Inc()
	if err == nil {
		ingesterLastLedgerIndex.WithLabelValues(m.mode, string(m.network)).Set(float64(ledgerIndex))
	}
}
