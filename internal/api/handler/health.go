package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/r6status/internal/api/apierr"
	"github.com/mcoot/r6status/internal/api/response"
	"github.com/mcoot/r6status/internal/storage"
)

// HealthHandler reports whether the backing store is reachable
type HealthHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(storage storage.Storage, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		storage: storage,
		logger:  logger,
	}
}

// Get handles GET /api/health
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.Ping(r.Context()); err != nil {
		h.logger.WarnContext(r.Context(), "health check failed", slog.String("error", err.Error()))
		apierr.WriteError(w, apierr.NewUnavailableError())
		return
	}

	response.JSON(w, http.StatusOK, response.HealthResponse{OK: true, Status: "ok"})
}
