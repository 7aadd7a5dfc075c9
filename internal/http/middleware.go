package http

import (
	"net/http"

	"github.com/charmbracelet/log"
)

// Middleware defines the standard signature for an HTTP middleware.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middlewares into a single handler.
// The middlewares are applied in the order they are passed.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// paramsMiddleware handles common query parameters like 'verbose'.
// Verbose logging is request-scoped: the handler gets a debug-level logger
// through the request context, and concurrent requests never touch the
// shared logger's level.
func paramsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Info("incoming request", "method", r.Method, "url", r.URL.String())

		logger := log.Default()
		if r.URL.Query().Get("verbose") == "true" {
			logger = logger.With()
			logger.SetLevel(log.DebugLevel)
		}
		ctx := log.WithContext(r.Context(), logger)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
