package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestGetStatusClass(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{code: 101, expected: "1xx"},
		{code: 200, expected: "2xx"},
		{code: 302, expected: "3xx"},
		{code: 402, expected: "4xx"},
		{code: 502, expected: "5xx"},
		{code: 0, expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, getStatusClass(tt.code))
		})
	}
}

func TestMiddleware(t *testing.T) {
	tel := NewTelemetry(OrchestrationServiceConfig)

	var seen *Telemetry

	r := chi.NewRouter()
	r.Use(Middleware(tel))
	r.Get("/sagas/{id}/audit", func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sagas/abc/audit", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Same(t, tel, seen)
	assert.Equal(t, "orchestration-service", seen.ServiceName())

	assert.Equal(t, "unmatched", routePattern(httptest.NewRequest(http.MethodGet, "/nope", nil)))
}

func TestFromContext_Fallback(t *testing.T) {
	tel := FromContext(context.Background())

	assert.NotNil(t, tel)
	assert.Equal(t, "unknown", tel.ServiceName())
	assert.Same(t, tel, FromContext(context.Background()))
}

func TestRecordCounter_ReusesInstruments(t *testing.T) {
	tel := NewTelemetry(OrchestrationServiceConfig)
	ctx := WithTelemetry(context.Background(), tel)

	RecordCounter(ctx, "saga_runs_total", "Saga runs by terminal status", 1)
	first, ok := tel.counters.Load("saga_runs_total")
	assert.True(t, ok)

	RecordCounter(ctx, "saga_runs_total", "Saga runs by terminal status", 1)
	second, _ := tel.counters.Load("saga_runs_total")
	assert.Equal(t, first, second)
}
