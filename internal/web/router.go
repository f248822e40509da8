package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/r6status/internal/services/status"
	"github.com/mcoot/r6status/internal/web/handler"
	"github.com/mcoot/r6status/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger        *slog.Logger
	StatusService *status.Service
	Team          string
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	RegisterRoutes(r, cfg)
	return r
}

// RegisterRoutes mounts the roster pages on an existing router
func RegisterRoutes(r *mux.Router, cfg RouterConfig) {
	rosterHandler := handler.NewRosterHandler(cfg.StatusService, cfg.Team, cfg.Logger)

	pages := r.NewRoute().Subrouter()
	pages.Use(middleware.RequestID())
	pages.Use(middleware.Recovery(cfg.Logger))
	pages.Use(middleware.Logging(cfg.Logger))
	pages.Use(middleware.Flash())

	pages.HandleFunc("/", rosterHandler.Home).Methods(http.MethodGet)
	pages.HandleFunc("/status/update", rosterHandler.Update).Methods(http.MethodPost)
	pages.HandleFunc("/roster/add", rosterHandler.Add).Methods(http.MethodPost)
	pages.HandleFunc("/roster/remove", rosterHandler.Remove).Methods(http.MethodPost)
}
