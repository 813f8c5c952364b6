package metrics

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CheckerMetrics holds the counters exported on /metrics
type CheckerMetrics struct {
	classifications *prometheus.CounterVec
	unlistedChecks  *prometheus.CounterVec
	upstreamErrors  *prometheus.CounterVec
	cacheLookups    *prometheus.CounterVec
}

var (
	checkerOnce     sync.Once
	checkerRegistry *CheckerMetrics
)

// Default returns the process-wide metrics, registering them on first use
func Default() *CheckerMetrics {
	checkerOnce.Do(func() {
		checkerRegistry = &CheckerMetrics{
			classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "royalty_classifications_total",
				Help: "Royalty payment classifications by status.",
			}, []string{"status"}),
			unlistedChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "royalty_unlisted_checks_total",
				Help: "Delisting checks by outcome.",
			}, []string{"unlisted"}),
			upstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "royalty_upstream_errors_total",
				Help: "Failed upstream requests by provider.",
			}, []string{"provider"}),
			cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "royalty_cache_lookups_total",
				Help: "Metadata cache lookups by result.",
			}, []string{"result"}),
		}
		prometheus.MustRegister(
			checkerRegistry.classifications,
			checkerRegistry.unlistedChecks,
			checkerRegistry.upstreamErrors,
			checkerRegistry.cacheLookups,
		)
	})
	return checkerRegistry
}

// Handler serves the default Prometheus registry
func Handler() http.Handler {
	return promhttp.Handler()
}

func (m *CheckerMetrics) ObserveClassification(status string) {
	if m == nil {
		return
	}
	if status == "" {
		status = "none"
	}
	m.classifications.WithLabelValues(status).Inc()
}

func (m *CheckerMetrics) ObserveUnlisted(unlisted bool) {
	if m == nil {
		return
	}
	m.unlistedChecks.WithLabelValues(strconv.FormatBool(unlisted)).Inc()
}

func (m *CheckerMetrics) UpstreamError(provider string) {
	if m == nil {
		return
	}
	if provider == "" {
		provider = "unknown"
	}
	m.upstreamErrors.WithLabelValues(provider).Inc()
}

// ObserveCacheLookup records a hit or a miss
func (m *CheckerMetrics) ObserveCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}
