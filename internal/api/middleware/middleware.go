package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/r6status/internal/api/apierr"
	"github.com/mcoot/r6status/internal/middleware"
)

// Chain returns the middleware stack applied to every /api route,
// outermost first
func Chain(logger *slog.Logger) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		Recovery(logger),
		middleware.Logging(logger),
	}
}

// Recovery turns a panic into a JSON INTERNAL_ERROR response
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		w.Header().Set("Cache-Control", "no-store")
		apierr.WriteError(w, apierr.NewInternalError())
	})
}
