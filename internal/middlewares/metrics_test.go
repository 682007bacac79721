package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type observation struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	seen []observation
}

func (f *fakeObserver) Observe(method, route string, status int, _ time.Duration) {
	f.seen = append(f.seen, observation{method, route, status})
}

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	obs := &fakeObserver{}

	r := chi.NewRouter()
	r.Use(MetricsMiddleware(obs))
	r.Delete("/currencies/{code}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/currencies/USD", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, []observation{{http.MethodDelete, "/currencies/{code}", http.StatusNotFound}}, obs.seen)
}

func TestMetricsMiddleware_WithoutRouter(t *testing.T) {
	obs := &fakeObserver{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	rr := httptest.NewRecorder()
	MetricsMiddleware(obs)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, []observation{{http.MethodGet, "unmatched", http.StatusOK}}, obs.seen)
}
