package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// HTTPMetricsMiddleware instrumenta requisições com métricas Prometheus.
// O label de path usa o padrão de rota do chi para manter a cardinalidade
// limitada (ex.: /api/user/{id} em vez do id concreto).
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		ObserveHTTPRequest(r.Method, path, strconv.Itoa(ww.Status()), time.Since(start))
	})
}
