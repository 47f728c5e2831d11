// Package metrics exposes Prometheus instrumentation for the generator
// service and its HTTP surface.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all application metrics
type Metrics struct {
	registry *prometheus.Registry

	PasswordsGenerated *prometheus.CounterVec
	GenerationFailures *prometheus.CounterVec
	PasswordLength     prometheus.Histogram
	StrengthChecks     *prometheus.CounterVec

	RequestDuration *prometheus.HistogramVec
	RequestTotal    *prometheus.CounterVec
}

// New creates the metrics and registers them on a private registry.
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		PasswordsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passwords_generated_total",
			Help:      "Total number of generated passwords by strength tier",
		}, []string{"tier"}),
		GenerationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_failures_total",
			Help:      "Total number of rejected or failed generation requests",
		}, []string{"reason"}),
		PasswordLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "password_length",
			Help:      "Length of generated passwords",
			Buckets:   []float64{4, 8, 12, 16, 24, 32, 64, 128},
		}),
		StrengthChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "strength_checks_total",
			Help:      "Total number of strength evaluations by tier",
		}, []string{"tier"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"method", "route", "status"}),
		RequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		m.PasswordsGenerated,
		m.GenerationFailures,
		m.PasswordLength,
		m.StrengthChecks,
		m.RequestDuration,
		m.RequestTotal,
		collectors.NewGoCollector(),
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveGenerated records a successfully generated password.
func (m *Metrics) ObserveGenerated(tier string, length int) {
	if m == nil {
		return
	}
	m.PasswordsGenerated.WithLabelValues(tier).Inc()
	m.PasswordLength.Observe(float64(length))
}

// ObserveFailure records a rejected generation request.
func (m *Metrics) ObserveFailure(reason string) {
	if m == nil {
		return
	}
	m.GenerationFailures.WithLabelValues(reason).Inc()
}

// ObserveStrength records a strength evaluation.
func (m *Metrics) ObserveStrength(tier string) {
	if m == nil {
		return
	}
	m.StrengthChecks.WithLabelValues(tier).Inc()
}
