package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

func init() { register(apiCallsTotal, apiCallLatencyMs) }

var (
	apiCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cocktaildb_api_calls_total",
			Help: "Upstream recipe API calls by operation and outcome (ok/not_found/error).",
		},
		[]string{"operation", "outcome"},
	)

	apiCallLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cocktaildb_api_latency_ms",
			Help:    "Upstream recipe API call latency distribution in milliseconds.",
			Buckets: []float64{10, 25, 50, 100, 200, 400, 800, 1600, 3000, 5000},
		},
		[]string{"operation", "success"},
	)
)

func ObserveAPICall(operation, outcome string, latencyMs int) {
	apiCallsTotal.WithLabelValues(norm(operation), norm(outcome)).Inc()
	apiCallLatencyMs.WithLabelValues(norm(operation), strconv.FormatBool(outcome == "ok" || outcome == "not_found")).
		Observe(float64(latencyMs))
}
