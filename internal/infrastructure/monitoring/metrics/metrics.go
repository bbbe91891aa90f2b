// Package metrics registers and exposes the service's Prometheus metrics.
// A dedicated registry is used so tests can construct isolated instances
// without tripping duplicate-registration panics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Validation outcome label values.
const (
	OutcomeValid         = "valid"
	OutcomeInvalidFormat = "invalid_format"
	OutcomeNotFound      = "not_found"
)

// Metrics holds all application metric vectors.  A nil *Metrics is a valid
// receiver for every observation method, so components can be wired without
// metrics in tests.
type Metrics struct {
	registry *prometheus.Registry

	validationsTotal    *prometheus.CounterVec
	invalidAttempts     *prometheus.CounterVec
	datasetReloadsTotal *prometheus.CounterVec
	datasetEntries      prometheus.Gauge

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New creates a Metrics instance backed by its own registry, pre-populated
// with the standard Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		validationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hsn_validations_total",
			Help: "Total code validations by outcome",
		}, []string{"outcome"}),
		invalidAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hsn_invalid_attempts_total",
			Help: "Failed validation attempts by reason",
		}, []string{"reason"}),
		datasetReloadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hsn_dataset_reloads_total",
			Help: "Reference dataset reload attempts by status",
		}, []string{"status"}),
		datasetEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hsn_dataset_entries",
			Help: "Number of codes in the active reference table",
		}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"method", "path"}),
	}

	reg.MustRegister(
		m.validationsTotal,
		m.invalidAttempts,
		m.datasetReloadsTotal,
		m.datasetEntries,
		m.httpRequestsTotal,
		m.httpRequestDuration,
	)
	return m
}

// Handler returns the /metrics HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveValidation records one validation with the given outcome label.
func (m *Metrics) ObserveValidation(outcome string) {
	if m == nil {
		return
	}
	m.validationsTotal.WithLabelValues(outcome).Inc()
}

// ObserveInvalidAttempt records one tracked failure by reason.
func (m *Metrics) ObserveInvalidAttempt(reason string) {
	if m == nil {
		return
	}
	m.invalidAttempts.WithLabelValues(reason).Inc()
}

// ObserveReload records a dataset reload attempt and, on success, the new
// table size.
func (m *Metrics) ObserveReload(success bool, entries int) {
	if m == nil {
		return
	}
	if success {
		m.datasetReloadsTotal.WithLabelValues("success").Inc()
		m.datasetEntries.Set(float64(entries))
	} else {
		m.datasetReloadsTotal.WithLabelValues("failure").Inc()
	}
}

// ObserveHTTPRequest records one completed HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}
