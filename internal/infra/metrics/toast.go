package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

func init() { register(toastRequestsTotal, toastLatencyMs) }

var (
	toastRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "toast_requests_total",
			Help: "Toast generation requests by outcome.",
		},
		[]string{"outcome"}, // ok | error | unconfigured
	)

	toastLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "toast_latency_ms",
			Help:    "Toast generation latency distribution in milliseconds.",
			Buckets: []float64{100, 250, 500, 1000, 2000, 4000, 8000, 15000},
		},
		[]string{"success"},
	)
)

func ObserveToast(outcome string, latencyMs int) {
	toastRequestsTotal.WithLabelValues(norm(outcome)).Inc()
	toastLatencyMs.WithLabelValues(strconv.FormatBool(outcome == "ok")).Observe(float64(latencyMs))
}
