package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mcoot/r6status/internal/services/status"
	"github.com/mcoot/r6status/internal/web/middleware"
	"github.com/mcoot/r6status/internal/web/templates/layout"
	"github.com/mcoot/r6status/internal/web/templates/pages"
)

// RosterHandler handles the roster page and its forms
type RosterHandler struct {
	service *status.Service
	team    string
	logger  *slog.Logger
}

// NewRosterHandler creates a new RosterHandler
func NewRosterHandler(service *status.Service, team string, logger *slog.Logger) *RosterHandler {
	return &RosterHandler{
		service: service,
		team:    team,
		logger:  logger,
	}
}

// Home renders the roster page
func (h *RosterHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, middleware.GetFlash(r.Context()), nil)
}

// Update handles the status update form
func (h *RosterHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithFlash(w, r, "error", "Invalid form data")
		return
	}

	active, err := strconv.ParseBool(r.FormValue("active"))
	if err != nil {
		redirectWithFlash(w, r, "error", "Choose active or inactive")
		return
	}

	player, err := h.service.Update(r.Context(), r.FormValue("username"), r.FormValue("pin"), active)
	if err != nil {
		h.logFailure(r, "update", err)
		redirectWithFlash(w, r, "error", userMessage(err))
		return
	}

	state := "inactive"
	if player.Active {
		state = "active"
	}
	redirectWithFlash(w, r, "success", player.Username+" is now "+state)
}

// Add handles the add player form. On success the page is rendered
// directly so the one-time PIN never lands in a cookie.
func (h *RosterHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithFlash(w, r, "error", "Invalid form data")
		return
	}

	result, err := h.service.Add(r.Context(), r.FormValue("adminPin"), r.FormValue("username"), r.FormValue("pin"))
	if err != nil {
		h.logFailure(r, "add", err)
		redirectWithFlash(w, r, "error", userMessage(err))
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	h.render(w, r, http.StatusOK,
		&layout.FlashMessage{Type: "success", Message: "Added " + result.Username},
		&pages.NewPlayer{Username: result.Username, PIN: result.PIN},
	)
}

// Remove handles the remove player form
func (h *RosterHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithFlash(w, r, "error", "Invalid form data")
		return
	}

	removed, err := h.service.Remove(r.Context(), r.FormValue("adminPin"), r.FormValue("username"))
	if err != nil {
		h.logFailure(r, "remove", err)
		redirectWithFlash(w, r, "error", userMessage(err))
		return
	}

	redirectWithFlash(w, r, "success", "Removed "+removed)
}

func (h *RosterHandler) render(w http.ResponseWriter, r *http.Request, code int, flash *layout.FlashMessage, newPlayer *pages.NewPlayer) {
	players, err := h.service.List(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list roster", slog.String("error", err.Error()))
		code = http.StatusInternalServerError
		flash = &layout.FlashMessage{Type: "error", Message: "Could not load the roster"}
	}

	data := pages.RosterData{
		PageData: layout.PageData{
			Title: "Roster - " + h.team,
			Flash: flash,
		},
		Team:      h.team,
		Players:   players,
		NewPlayer: newPlayer,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := pages.Roster(data).Render(r.Context(), w); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render roster", slog.String("error", err.Error()))
	}
}

func (h *RosterHandler) logFailure(r *http.Request, action string, err error) {
	if status.Outcome(err) == "error" {
		h.logger.ErrorContext(r.Context(), "roster form failed",
			slog.String("action", action),
			slog.String("error", err.Error()),
		)
	}
}

func redirectWithFlash(w http.ResponseWriter, r *http.Request, flashType, message string) {
	middleware.SetFlash(w, flashType, message)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
