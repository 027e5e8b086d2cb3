// Package metrics provides Prometheus metrics for the work-status service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RosterSize       prometheus.Gauge
	AssignmentsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates and registers all metrics on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "workstatus_requests_total",
				Help: "Total number of report requests by endpoint and status.",
			},
			[]string{"endpoint", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "workstatus_request_duration_seconds",
				Help:    "Report request duration by endpoint.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		RosterSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "workstatus_roster_size",
				Help: "Number of members in the most recently loaded roster.",
			},
		),
		AssignmentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "workstatus_projection_assignments_total",
				Help: "Resolved projection assignments by category and evidence basis.",
			},
			[]string{"category", "basis"},
		),
		registry: reg,
	}

	reg.MustRegister(m.RequestsTotal)
	reg.MustRegister(m.RequestDuration)
	reg.MustRegister(m.RosterSize)
	reg.MustRegister(m.AssignmentsTotal)

	return m
}

// Handler returns an http.Handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) RecordRequest(endpoint, status string) {
	m.RequestsTotal.WithLabelValues(endpoint, status).Inc()
}

func (m *Metrics) ObserveDuration(endpoint string, seconds float64) {
	m.RequestDuration.WithLabelValues(endpoint).Observe(seconds)
}

func (m *Metrics) SetRosterSize(n int) {
	m.RosterSize.Set(float64(n))
}

func (m *Metrics) RecordAssignments(category, basis string, n int) {
	if n <= 0 {
		return
	}
	m.AssignmentsTotal.WithLabelValues(category, basis).Add(float64(n))
}
