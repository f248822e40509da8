package routes

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mcoot/r6status/internal/api"
	"github.com/mcoot/r6status/internal/factory"
	"github.com/mcoot/r6status/internal/web"
)

// Config holds what the combined HTTP handler needs
type Config struct {
	Logger *slog.Logger
	App    *factory.App
	Team   string
}

// New combines the API, the roster pages and /metrics into one handler
func New(cfg Config) http.Handler {
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:        cfg.Logger,
		Storage:       cfg.App.Storage,
		StatusService: cfg.App.StatusService,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:        cfg.Logger,
		StatusService: cfg.App.StatusService,
		Team:          cfg.Team,
	})

	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", webRouter)
	return mux
}
