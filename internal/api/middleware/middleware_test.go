package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultationService/pkg/metrics"
)

func TestAuth_MissingHeader(t *testing.T) {
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, req)

	assert.Equal(t, http.StatusUnauthorized, rw.Code)
}

func TestAuth_InvalidUserID(t *testing.T) {
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, raw := range []string{"abc", "0", "-5", "1.5"} {
		req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
		req.Header.Set(UserIDHeader, raw)
		rw := httptest.NewRecorder()
		h.ServeHTTP(rw, req)

		assert.Equal(t, http.StatusUnauthorized, rw.Code, "header=%q", raw)
	}
}

func TestAuth_PutsUserIDIntoContext(t *testing.T) {
	var gotID int64
	var gotOK bool

	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
	req.Header.Set(UserIDHeader, "42")
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, req)

	require.Equal(t, http.StatusOK, rw.Code)
	assert.True(t, gotOK)
	assert.Equal(t, int64(42), gotID)
}

func TestRequestID_PropagatesIncomingHeader(t *testing.T) {
	var fromCtx string

	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/slots", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, req)

	assert.Equal(t, "req-123", fromCtx)
	assert.Equal(t, "req-123", rw.Header().Get(RequestIDHeader))
}

func TestMetricsMiddleware_RecordsTextualStatusLabel(t *testing.T) {
	m := metrics.New("test-service")

	h := MetricsMiddleware(m, "test-service")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/bookings/999", nil)
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, req)

	require.Equal(t, http.StatusNotFound, rw.Code)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	found := false
	for _, mf := range families {
		if mf.GetName() != "http_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "status" && label.GetValue() == "404" {
					found = true
				}
			}
		}
	}
	assert.True(t, found, "status code must be recorded as a string label")
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var fromCtx string

	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/slots", nil)
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, req)

	require.NotEmpty(t, fromCtx)
	assert.Len(t, fromCtx, 32)
	assert.Equal(t, fromCtx, rw.Header().Get(RequestIDHeader))
}
