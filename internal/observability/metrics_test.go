package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsHandlerExposesObservations(t *testing.T) {
	m := NewMetrics()
	m.ObserveAPI("GET", "/api/colleges", "200", 15*time.Millisecond)
	m.ObserveSeed("colleges", 3, false)
	m.ObserveSeed("scholarships", 0, true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	out := string(body)
	assert.Contains(t, out, `careerpath_api_requests_total{method="GET",route="/api/colleges",status="200"} 1`)
	assert.Contains(t, out, `careerpath_seed_records_total{source="colleges"} 3`)
	assert.Contains(t, out, `careerpath_seed_failures_total{source="scholarships"} 1`)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ApiInflightInc()
		m.ApiInflightDec()
		m.ObserveAPI("GET", "/", "200", time.Second)
		m.ObserveSeed("x", 1, true)
	})
}

func TestClampRatio(t *testing.T) {
	assert.Equal(t, 0.0, clampRatio(-1))
	assert.Equal(t, 1.0, clampRatio(3))
	assert.Equal(t, 0.25, clampRatio(0.25))
}
