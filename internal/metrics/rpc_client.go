package metrics

import (
	"time"

	"github.com/goodnatureofminers/ctimdex-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	xrplRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ctimdex",
		Subsystem: "xrpl_rpc",
		Name:      "requests_total",
		Help:      "Count of XRPL JSON-RPC requests.",
	}, []string{"method", "network", "status"})
	xrplRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ctimdex",
		Subsystem: "xrpl_rpc",
		Name:      "request_duration_seconds",
		Help:      "Duration of XRPL JSON-RPC requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "network", "status"})
)

// RPCClient tracks metrics for XRPL JSON-RPC calls.
type RPCClient struct {
	network model.Network
}

// NewRPCClient creates an RPCClient metrics collector.
func NewRPCClient(network model.Network) *RPCClient {
	if network == "" {
		network = "unknown"
	}
	return &RPCClient{network: network}
}

// Observe records the outcome and duration of an RPC call.
func (m RPCClient) Observe(method string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	xrplRPCRequestsTotal.WithLabelValues(method, string(m.network), status).Inc()
	xrplRPCRequestDuration.WithLabelValues(method, string(m.network), status).Observe(time.Since(started).Seconds())
}
