// Package metrics holds the Prometheus collectors for the service.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry *prometheus.Registry
	once     sync.Once
)

var (
	BacktestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vantagelite",
		Name:      "backtests_total",
		Help:      "Total number of backtests run, by price source",
	}, []string{"source"})
	VendorErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vantagelite",
		Name:      "vendor_errors_total",
		Help:      "Total number of failed price vendor lookups",
	})
	PresetWritesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vantagelite",
		Name:      "preset_writes_total",
		Help:      "Total number of presets saved",
	})
)

var (
	BacktestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "vantagelite",
		Name:      "backtest_duration_seconds",
		Help:      "Duration of backtest runs in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the Prometheus registry exactly once.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(BacktestsTotal)
		registry.MustRegister(VendorErrorsTotal)
		registry.MustRegister(PresetWritesTotal)
		registry.MustRegister(BacktestDuration)
	})
	return registry
}

// Handler serves the registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.HandlerFor(InitRegistry(), promhttp.HandlerOpts{})
}
