package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	c, err := NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(c.Middleware)
	r.Get("/api/locations/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/api/locations/a", "/api/locations/b", "/healthz"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Requests.WithLabelValues("GET", "/api/locations/{id}", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Requests.WithLabelValues("GET", "/healthz", "200")))
}

func TestObserveSearch(t *testing.T) {
	c, err := NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	c.ObserveSearch(3, false)
	c.ObserveSearch(0, true)
	c.ObserveInvalidQuery()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.UnknownPostal))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.InvalidQueries))
	assert.Equal(t, 1, testutil.CollectAndCount(c.SearchResults))
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.ObserveSearch(1, true)
		c.ObserveInvalidQuery()
	})
}

func TestRegisterTwiceReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewCollector(reg)
	require.NoError(t, err)
	second, err := NewCollector(reg)
	require.NoError(t, err)

	second.ObserveInvalidQuery()
	assert.Equal(t, 1.0, testutil.ToFloat64(first.InvalidQueries))
}

func TestHandlerServesRegistry(t *testing.T) {
	c, err := NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)
	c.ObserveSearch(5, true)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "location_search_unknown_postal_total 1"))
}
