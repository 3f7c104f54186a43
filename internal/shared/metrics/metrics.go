// Package metrics publishes Prometheus metrics for the protective
// middleware layer: HTTP traffic, directory client health, idempotency
// decisions, and rate limiting.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Breaker state values exposed by the backoffice_directory_breaker_state
// gauge.
const (
	breakerClosed   = 0
	breakerOpen     = 1
	breakerHalfOpen = 2
)

// Recorder owns a Prometheus registry and the instruments wired into the
// middleware layer. A nil Recorder is a valid no-op so call sites never
// need to guard.
type Recorder struct {
	gatherer prometheus.Gatherer
	handler  http.Handler

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	directoryEvents    *prometheus.CounterVec
	breakerState       prometheus.Gauge
	breakerTransitions *prometheus.CounterVec

	idempotencyDecisions *prometheus.CounterVec
	rateLimited          *prometheus.CounterVec
}

// NewRecorder constructs a Prometheus-backed Recorder. When reg is nil a
// dedicated registry is created so multiple recorders can coexist without
// conflicting with the global default registerer.
func NewRecorder(reg *prometheus.Registry) *Recorder {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	reg.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "backoffice",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Completed HTTP requests.",
	}, []string{"route", "method", "status"})

	httpLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "backoffice",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency distribution for completed HTTP requests.",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"route", "method"})

	directoryEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "backoffice",
		Subsystem: "directory",
		Name:      "events_total",
		Help:      "Directory client events (connect, bind, search, retry, timeout, teardown) by outcome.",
	}, []string{"event", "outcome"})

	breakerState := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "backoffice",
		Subsystem: "directory",
		Name:      "breaker_state",
		Help:      "Directory circuit breaker state (0 closed, 1 open, 2 half-open).",
	})

	breakerTransitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "backoffice",
		Subsystem: "directory",
		Name:      "breaker_transitions_total",
		Help:      "Directory circuit breaker state transitions.",
	}, []string{"from", "to"})

	idempotencyDecisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "backoffice",
		Subsystem: "idempotency",
		Name:      "decisions_total",
		Help:      "Idempotency store decisions by scope.",
	}, []string{"scope", "decision"})

	rateLimited := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "backoffice",
		Subsystem: "ratelimit",
		Name:      "limited_total",
		Help:      "Requests rejected by the rate limiter.",
	}, []string{"route"})

	reg.MustRegister(httpRequests, httpLatency, directoryEvents, breakerState, breakerTransitions, idempotencyDecisions, rateLimited)

	return &Recorder{
		gatherer:             reg,
		handler:              promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		httpRequests:         httpRequests,
		httpLatency:          httpLatency,
		directoryEvents:      directoryEvents,
		breakerState:         breakerState,
		breakerTransitions:   breakerTransitions,
		idempotencyDecisions: idempotencyDecisions,
		rateLimited:          rateLimited,
	}
}

// Handler exposes the Prometheus HTTP handler for the recorder's registry.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "metrics unavailable", http.StatusServiceUnavailable)
		})
	}
	return r.handler
}

// Gatherer returns the underlying Prometheus gatherer for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.gatherer
}

// ObserveHTTPRequest records one completed request.
func (r *Recorder) ObserveHTTPRequest(route, method string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	statusLabel := strconv.Itoa(status)
	if status <= 0 {
		statusLabel = "unknown"
	}
	routeLabel := normalizeLabel(route)
	methodLabel := normalizeLabel(method)
	r.httpRequests.WithLabelValues(routeLabel, methodLabel, statusLabel).Inc()
	r.httpLatency.WithLabelValues(routeLabel, methodLabel).Observe(duration.Seconds())
}

// ObserveDirectoryEvent records one directory client event.
func (r *Recorder) ObserveDirectoryEvent(event string, err error) {
	if r == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	r.directoryEvents.WithLabelValues(normalizeLabel(event), outcome).Inc()
}

// ObserveBreakerTransition records a breaker transition and moves the state
// gauge to the destination state.
func (r *Recorder) ObserveBreakerTransition(from, to string) {
	if r == nil {
		return
	}
	r.breakerTransitions.WithLabelValues(normalizeLabel(from), normalizeLabel(to)).Inc()
	r.breakerState.Set(stateValue(to))
}

// ObserveIdempotencyDecision records one idempotency store decision.
func (r *Recorder) ObserveIdempotencyDecision(scope, decision string) {
	if r == nil {
		return
	}
	r.idempotencyDecisions.WithLabelValues(normalizeLabel(scope), normalizeLabel(decision)).Inc()
}

// ObserveRateLimited records one rejected request.
func (r *Recorder) ObserveRateLimited(route string) {
	if r == nil {
		return
	}
	r.rateLimited.WithLabelValues(normalizeLabel(route)).Inc()
}

func stateValue(state string) float64 {
	switch state {
	case "closed":
		return breakerClosed
	case "open":
		return breakerOpen
	case "half_open":
		return breakerHalfOpen
	default:
		return -1
	}
}

func normalizeLabel(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "unknown"
	}
	return trimmed
}
