package handler

import (
	"errors"

	"github.com/mcoot/r6status/internal/model"
	"github.com/mcoot/r6status/internal/services/auth"
)

// userMessage turns a status service error into text fit for a flash
func userMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return "Please fill in all required fields"
	case errors.Is(err, model.ErrPlayerNotFound):
		return "No such player on the roster"
	case errors.Is(err, model.ErrPlayerExists):
		return "That player is already on the roster"
	case errors.Is(err, auth.ErrInvalidPIN):
		return "Incorrect PIN"
	case errors.Is(err, auth.ErrInvalidAdminPIN):
		return "Incorrect admin PIN"
	case errors.Is(err, auth.ErrMisconfigured):
		return "The server is missing its PIN configuration"
	default:
		return "Something went wrong, please try again"
	}
}
