package pages

import (
	"github.com/mcoot/r6status/internal/model"
	"github.com/mcoot/r6status/internal/web/templates/layout"
)

// NewPlayer is shown once, right after a successful add
type NewPlayer struct {
	Username string
	PIN      string
}

// RosterData holds data for the roster page
type RosterData struct {
	layout.PageData
	Team      string
	Players   []model.PlayerStatus
	NewPlayer *NewPlayer
}
