package api

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/r6status/internal/api/apierr"
	"github.com/mcoot/r6status/internal/api/handler"
	"github.com/mcoot/r6status/internal/api/middleware"
	"github.com/mcoot/r6status/internal/services/status"
	"github.com/mcoot/r6status/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	Storage       storage.Storage
	StatusService *status.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	RegisterRoutes(r, cfg)
	return r
}

// RegisterRoutes mounts the API under /api on an existing router
func RegisterRoutes(r *mux.Router, cfg RouterConfig) {
	statusHandler := handler.NewStatusHandler(cfg.StatusService, cfg.Logger)
	healthHandler := handler.NewHealthHandler(cfg.Storage, cfg.Logger)

	api := r.PathPrefix("/api").Subrouter()
	for _, mw := range middleware.Chain(cfg.Logger) {
		api.Use(mw)
	}

	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError())
	})
	api.MethodNotAllowedHandler = methodHandlers{}

	// One route per path; methodHandlers answers unknown methods with 405.
	// Routes under a PathPrefix subrouter lose gorilla's method mismatch
	// when a later sibling fails on path.
	api.Handle("/status", methodHandlers{
		http.MethodGet:  statusHandler.List,
		http.MethodPost: statusHandler.Post,
	})
	api.Handle("/health", methodHandlers{
		http.MethodGet: healthHandler.Get,
	})
}

// methodHandlers dispatches a single path by HTTP method and answers
// any other method with a JSON 405
type methodHandlers map[string]http.HandlerFunc

func (m methodHandlers) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h, ok := m[r.Method]; ok {
		h(w, r)
		return
	}

	if len(m) > 0 {
		allowed := slices.Sorted(maps.Keys(m))
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	apierr.WriteError(w, apierr.NewMethodNotAllowedError())
}
