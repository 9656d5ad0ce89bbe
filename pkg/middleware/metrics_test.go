package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_RecordsPerRoutePattern(t *testing.T) {
	before := testutil.CollectAndCount(httpRequestsTotal)

	r := chi.NewRouter()
	r.Use(PrometheusMetrics("brandscope"))
	r.Get("/api/v1/competitors/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, id := range []string{"c-1", "c-2"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/competitors/"+id, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	// Two requests to distinct ids collapse into one labeled series.
	assert.Equal(t, before+1, testutil.CollectAndCount(httpRequestsTotal))
	assert.Equal(t, float64(2), testutil.ToFloat64(
		httpRequestsTotal.WithLabelValues("brandscope", http.MethodGet, "/api/v1/competitors/{id}", "200"),
	))
}

func TestPrometheusMetrics_PreservesStatusCode(t *testing.T) {
	handler := PrometheusMetrics("brandscope")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	r := chi.NewRouter()
	r.Get("/teapot", handler.ServeHTTP)

	req := httptest.NewRequest(http.MethodGet, "/teapot", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
}
