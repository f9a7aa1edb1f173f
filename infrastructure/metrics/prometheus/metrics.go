// ABOUTME: Prometheus implementation of the pipeline and session counters
// ABOUTME: Registers on its own registry so the /metrics handler only exposes this service

package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"snapfind-api/core/domain"
)

const namespace = "snapfind"

// Metrics implements interfaces.Metrics
type Metrics struct {
	registry   *prometheus.Registry
	searches   *prometheus.CounterVec
	pages      prometheus.Counter
	candidates *prometheus.CounterVec
	actions    *prometheus.CounterVec
}

// New creates the counters along with Go runtime and process collectors
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Completed image searches by outcome.",
		}, []string{"outcome"}),
		pages: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pages_fetched_total",
			Help:      "Provider result pages fetched.",
		}),
		candidates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_total",
			Help:      "Candidate URLs extracted, by strategy.",
		}, []string{"strategy"}),
		actions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_actions_total",
			Help:      "Session actions applied, by action.",
		}, []string{"action"}),
	}
}

// SearchCompleted counts a finished pipeline run
func (m *Metrics) SearchCompleted(outcome domain.Outcome) {
	m.searches.WithLabelValues(string(outcome)).Inc()
}

// PagesFetched adds fetched provider pages
func (m *Metrics) PagesFetched(n int) {
	if n > 0 {
		m.pages.Add(float64(n))
	}
}

// CandidatesExtracted adds candidates produced by one strategy
func (m *Metrics) CandidatesExtracted(strategy string, n int) {
	if n > 0 {
		m.candidates.WithLabelValues(strategy).Add(float64(n))
	}
}

// SessionAction counts an applied action
func (m *Metrics) SessionAction(action domain.Action) {
	m.actions.WithLabelValues(string(action)).Inc()
}

// Registry returns the registry backing these metrics
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
