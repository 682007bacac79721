package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// RequestObserver records finished requests.
type RequestObserver interface {
	Observe(method, route string, status int, duration time.Duration)
}

// MetricsMiddleware reports every request to obs, labelled by the chi route
// pattern rather than the raw path so that currency codes do not become
// label values.
func MetricsMiddleware(obs RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := newResponseWriter(w)

			next.ServeHTTP(rw, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			obs.Observe(r.Method, route, rw.statusCode, time.Since(start))
		})
	}
}
