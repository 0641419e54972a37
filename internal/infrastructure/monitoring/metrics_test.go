package monitoring

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsExposition(t *testing.T) {
	vars := 3
	m := NewMetrics(func() int { return vars }, func() int { return 7 })
	m.RecordHTTPRequest("GET", "/health", "200", 5*time.Millisecond)
	m.RecordToolCall("uncertainty", "uncertainty.add", "ok", time.Millisecond)
	m.RecordToolCall("uncertainty", "uncertainty.divide", "error", time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "uncertain_http_requests_total")
	assert.Contains(t, body, "uncertain_registered_variables 3")
	assert.Contains(t, body, "uncertain_stored_values 7")
	assert.Contains(t, body, "uncertain_tool_errors_total")
}

func TestTimer(t *testing.T) {
	m := NewMetrics(nil, nil)
	timer := NewTimer(m, "uncertainty", "uncertainty.sin")
	timer.Stop("ok")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "uncertain_tool_calls_total")
}

func TestIsolatedRegistries(t *testing.T) {
	// Two collectors must not clash over metric registration.
	a := NewMetrics(nil, nil)
	b := NewMetrics(nil, nil)
	require.NotNil(t, a)
	require.NotNil(t, b)
}
