package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_http_requests_total",
		Help: "HTTP requests by route and status",
	}, []string{"method", "route", "status"})

	httpLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wallet_http_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	seamlessResults = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_seamless_results_total",
		Help: "seamless wallet results by operation and result code",
	}, []string{"operation", "code"})

	seamlessBatchLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wallet_seamless_batch_duration_seconds",
		Help:    "time spent processing one seamless wallet batch",
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"operation"})

	ledgerMutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_ledger_mutations_total",
		Help: "ledger mutations by transaction kind and outcome",
	}, []string{"kind", "outcome"})

	registerOnce sync.Once
)

// Register adds the collectors to reg. Safe to call more than once.
func Register(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		reg.MustRegister(httpRequests, httpLatency, seamlessResults, seamlessBatchLatency, ledgerMutations)
	})
}

// ObserveHTTP records one served HTTP request.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveSeamlessResult counts one per-transaction result code.
func ObserveSeamlessResult(operation string, code int) {
	seamlessResults.WithLabelValues(operation, strconv.Itoa(code)).Inc()
}

// ObserveSeamlessBatch records the processing time of one batch.
func ObserveSeamlessBatch(operation string, elapsed time.Duration) {
	seamlessBatchLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveLedgerMutation counts a ledger mutation attempt; outcome is "ok" or an error class.
func ObserveLedgerMutation(kind string, outcome string) {
	ledgerMutations.WithLabelValues(kind, outcome).Inc()
}
