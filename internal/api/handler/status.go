package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/mcoot/r6status/internal/api/apierr"
	"github.com/mcoot/r6status/internal/api/request"
	"github.com/mcoot/r6status/internal/api/response"
	"github.com/mcoot/r6status/internal/model"
	"github.com/mcoot/r6status/internal/services/status"
)

// maxBodyBytes bounds POST /api/status bodies
const maxBodyBytes = 16 << 10

// StatusHandler handles the roster status endpoints
type StatusHandler struct {
	service *status.Service
	logger  *slog.Logger
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(service *status.Service, logger *slog.Logger) *StatusHandler {
	return &StatusHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /api/status
func (h *StatusHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ListResponse{
		OK:      true,
		Players: response.PlayersFromModel(players),
	})
}

// Post handles POST /api/status, dispatching on the action field
func (h *StatusHandler) Post(w http.ResponseWriter, r *http.Request) {
	req := decodeStatusRequest(w, r)

	switch req.Action {
	case request.ActionUpdate:
		h.update(w, r, req)
	case request.ActionAdd:
		h.add(w, r, req)
	case request.ActionRemove:
		h.remove(w, r, req)
	default:
		apierr.WriteError(w, apierr.NewInvalidRequestError("Unknown action"))
	}
}

func (h *StatusHandler) update(w http.ResponseWriter, r *http.Request, req request.StatusRequest) {
	if model.NormalizeUsername(req.Username.String()) == "" || req.PIN == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("username and pin are required"))
		return
	}
	active, ok := req.ActiveFlag()
	if !ok {
		apierr.WriteError(w, apierr.NewInvalidRequestError("active must be a boolean"))
		return
	}

	player, err := h.service.Update(r.Context(), req.Username.String(), req.PIN.String(), active)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UpdateResponse{
		OK:     true,
		Player: response.PlayerFromModel(*player),
	})
}

func (h *StatusHandler) add(w http.ResponseWriter, r *http.Request, req request.StatusRequest) {
	result, err := h.service.Add(r.Context(), req.AdminPIN.String(), req.Username.String(), req.PIN.String())
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AddResponse{
		OK:       true,
		Username: result.Username,
		PIN:      result.PIN,
	})
}

func (h *StatusHandler) remove(w http.ResponseWriter, r *http.Request, req request.StatusRequest) {
	removed, err := h.service.Remove(r.Context(), req.AdminPIN.String(), req.Username.String())
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RemoveResponse{
		OK:      true,
		Removed: removed,
	})
}

func (h *StatusHandler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	if status.Outcome(err) == "error" {
		h.logger.ErrorContext(ctx, "status request failed", slog.String("error", err.Error()))
	}
	apierr.WriteError(w, err)
}

// decodeStatusRequest reads the body, treating anything unparseable as {}
func decodeStatusRequest(w http.ResponseWriter, r *http.Request) request.StatusRequest {
	var req request.StatusRequest

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return req
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return request.StatusRequest{}
	}
	return req
}
