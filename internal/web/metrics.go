package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/user/wispmon/internal/model"
)

// Metrics exposes ingestion and fleet counters to Prometheus.
type Metrics struct {
	registry *prometheus.Registry

	ingestedTotal *prometheus.CounterVec
	ingestErrors  prometheus.Counter
	rejectedAuth  prometheus.Counter
	httpRequests  *prometheus.CounterVec
	fleetRouters  *prometheus.GaugeVec
}

// NewMetrics creates and registers the wispmon collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		ingestedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wispmon_telemetry_ingested_total",
				Help: "Telemetry records accepted, by reported status",
			},
			[]string{"status"},
		),
		ingestErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wispmon_ingest_errors_total",
			Help: "Telemetry records rejected as malformed or invalid",
		}),
		rejectedAuth: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wispmon_unauthorized_requests_total",
			Help: "Requests rejected by the bearer token check",
		}),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wispmon_http_requests_total",
				Help: "HTTP requests served, by route template and method",
			},
			[]string{"route", "method"},
		),
		fleetRouters: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "wispmon_fleet_routers",
				Help: "Routers in the latest fleet snapshot, by status",
			},
			[]string{"status"},
		),
	}

	m.registry.MustRegister(
		m.ingestedTotal,
		m.ingestErrors,
		m.rejectedAuth,
		m.httpRequests,
		m.fleetRouters,
	)

	return m
}

// Registry returns the registry backing the /metrics endpoint.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordIngest counts one accepted record.
func (m *Metrics) RecordIngest(status model.Status) {
	m.ingestedTotal.WithLabelValues(string(status)).Inc()
}

// RecordIngestError counts one rejected record.
func (m *Metrics) RecordIngestError() {
	m.ingestErrors.Inc()
}

// RecordUnauthorized counts one failed token check.
func (m *Metrics) RecordUnauthorized() {
	m.rejectedAuth.Inc()
}

// CountRequests is a mux middleware counting requests per route template.
func (m *Metrics) CountRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		m.httpRequests.WithLabelValues(route, r.Method).Inc()
		next.ServeHTTP(w, r)
	})
}

// SetFleet publishes the latest fleet snapshot counts.
func (m *Metrics) SetFleet(summary model.FleetSummary) {
	m.fleetRouters.WithLabelValues("online").Set(float64(summary.Online))
	m.fleetRouters.WithLabelValues("offline").Set(float64(summary.Offline))
	warning := summary.Total - summary.Online - summary.Offline
	m.fleetRouters.WithLabelValues("warning").Set(float64(warning))
}
