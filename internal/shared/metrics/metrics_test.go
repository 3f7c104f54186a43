package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RecorderSuite struct {
	suite.Suite

	recorder *Recorder
}

func TestRecorderSuite(t *testing.T) {
	suite.Run(t, new(RecorderSuite))
}

func (s *RecorderSuite) SetupTest() {
	s.recorder = NewRecorder(prometheus.NewRegistry())
}

func (s *RecorderSuite) gather() []*dto.MetricFamily {
	families, err := s.recorder.Gatherer().Gather()
	s.Require().NoError(err)
	return families
}

func (s *RecorderSuite) findMetric(name string, labels map[string]string) *dto.Metric {
	for _, family := range s.gather() {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			if matchLabels(metric, labels) {
				return metric
			}
		}
	}
	return nil
}

func matchLabels(metric *dto.Metric, labels map[string]string) bool {
	seen := make(map[string]string, len(metric.GetLabel()))
	for _, pair := range metric.GetLabel() {
		seen[pair.GetName()] = pair.GetValue()
	}
	for name, value := range labels {
		if seen[name] != value {
			return false
		}
	}
	return true
}

func (s *RecorderSuite) TestObserveHTTPRequestCountsAndTimes() {
	s.recorder.ObserveHTTPRequest("/api/auth/login", "POST", 200, 30*time.Millisecond)
	s.recorder.ObserveHTTPRequest("/api/auth/login", "POST", 200, 45*time.Millisecond)
	s.recorder.ObserveHTTPRequest("/api/auth/login", "POST", 401, 5*time.Millisecond)

	counter := s.findMetric("backoffice_http_requests_total", map[string]string{
		"route":  "/api/auth/login",
		"method": "POST",
		"status": "200",
	})
	s.Require().NotNil(counter)
	s.InDelta(2, counter.GetCounter().GetValue(), 0.0001)

	rejected := s.findMetric("backoffice_http_requests_total", map[string]string{
		"route":  "/api/auth/login",
		"method": "POST",
		"status": "401",
	})
	s.Require().NotNil(rejected)
	s.InDelta(1, rejected.GetCounter().GetValue(), 0.0001)

	latency := s.findMetric("backoffice_http_request_duration_seconds", map[string]string{
		"route":  "/api/auth/login",
		"method": "POST",
	})
	s.Require().NotNil(latency)
	s.Equal(uint64(3), latency.GetHistogram().GetSampleCount())
}

func (s *RecorderSuite) TestObserveHTTPRequestNormalizesBlankLabels() {
	s.recorder.ObserveHTTPRequest("", "", 0, time.Millisecond)

	counter := s.findMetric("backoffice_http_requests_total", map[string]string{
		"route":  "unknown",
		"method": "unknown",
		"status": "unknown",
	})
	s.Require().NotNil(counter)
	s.InDelta(1, counter.GetCounter().GetValue(), 0.0001)
}

func (s *RecorderSuite) TestObserveDirectoryEventSplitsOutcome() {
	s.recorder.ObserveDirectoryEvent("search", nil)
	s.recorder.ObserveDirectoryEvent("search", nil)
	s.recorder.ObserveDirectoryEvent("search", assertErr{})

	success := s.findMetric("backoffice_directory_events_total", map[string]string{
		"event":   "search",
		"outcome": "success",
	})
	s.Require().NotNil(success)
	s.InDelta(2, success.GetCounter().GetValue(), 0.0001)

	failure := s.findMetric("backoffice_directory_events_total", map[string]string{
		"event":   "search",
		"outcome": "error",
	})
	s.Require().NotNil(failure)
	s.InDelta(1, failure.GetCounter().GetValue(), 0.0001)
}

func (s *RecorderSuite) TestObserveBreakerTransitionTracksGaugeAndCounter() {
	s.recorder.ObserveBreakerTransition("closed", "open")

	transition := s.findMetric("backoffice_directory_breaker_transitions_total", map[string]string{
		"from": "closed",
		"to":   "open",
	})
	s.Require().NotNil(transition)
	s.InDelta(1, transition.GetCounter().GetValue(), 0.0001)

	state := s.findMetric("backoffice_directory_breaker_state", nil)
	s.Require().NotNil(state)
	s.InDelta(1, state.GetGauge().GetValue(), 0.0001)

	s.recorder.ObserveBreakerTransition("open", "half_open")
	state = s.findMetric("backoffice_directory_breaker_state", nil)
	s.Require().NotNil(state)
	s.InDelta(2, state.GetGauge().GetValue(), 0.0001)

	s.recorder.ObserveBreakerTransition("half_open", "closed")
	state = s.findMetric("backoffice_directory_breaker_state", nil)
	s.Require().NotNil(state)
	s.InDelta(0, state.GetGauge().GetValue(), 0.0001)
}

func (s *RecorderSuite) TestObserveIdempotencyDecision() {
	s.recorder.ObserveIdempotencyDecision("users:create", "acquired")
	s.recorder.ObserveIdempotencyDecision("users:create", "replayed")
	s.recorder.ObserveIdempotencyDecision("users:create", "replayed")

	replayed := s.findMetric("backoffice_idempotency_decisions_total", map[string]string{
		"scope":    "users:create",
		"decision": "replayed",
	})
	s.Require().NotNil(replayed)
	s.InDelta(2, replayed.GetCounter().GetValue(), 0.0001)
}

func (s *RecorderSuite) TestObserveRateLimited() {
	s.recorder.ObserveRateLimited("auth:login")

	limited := s.findMetric("backoffice_ratelimit_limited_total", map[string]string{
		"route": "auth:login",
	})
	s.Require().NotNil(limited)
	s.InDelta(1, limited.GetCounter().GetValue(), 0.0001)
}

func (s *RecorderSuite) TestHandlerServesExposition() {
	s.recorder.ObserveRateLimited("auth:login")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	s.recorder.Handler().ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "backoffice_ratelimit_limited_total")
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder

	rec.ObserveHTTPRequest("/healthz", "GET", 200, time.Millisecond)
	rec.ObserveDirectoryEvent("bind", nil)
	rec.ObserveBreakerTransition("closed", "open")
	rec.ObserveIdempotencyDecision("users:create", "acquired")
	rec.ObserveRateLimited("auth:login")

	recorder := httptest.NewRecorder()
	rec.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	families, err := rec.Gatherer().Gather()
	require.NoError(t, err)
	require.Empty(t, families)
}

func TestNewRecorderDefaultsRegistry(t *testing.T) {
	rec := NewRecorder(nil)
	require.NotNil(t, rec)

	families, err := rec.Gatherer().Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}

type assertErr struct{}

func (assertErr) Error() string { return "assert" }
