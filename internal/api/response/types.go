package response

import "github.com/mcoot/r6status/internal/model"

// Player is the public view of a roster entry
type Player struct {
	Username  string `json:"username"`
	Active    bool   `json:"active"`
	UpdatedAt string `json:"updatedAt"`
}

// PlayerFromModel converts a model.PlayerStatus to a response Player
func PlayerFromModel(p model.PlayerStatus) Player {
	return Player{
		Username:  p.Username,
		Active:    p.Active,
		UpdatedAt: p.UpdatedAt,
	}
}

// PlayersFromModel converts a roster listing. The result is never nil.
func PlayersFromModel(players []model.PlayerStatus) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// ListResponse is the response for GET /api/status
type ListResponse struct {
	OK      bool     `json:"ok"`
	Players []Player `json:"players"`
}

// UpdateResponse is the response for the update action
type UpdateResponse struct {
	OK     bool   `json:"ok"`
	Player Player `json:"player"`
}

// AddResponse is the response for the add action. PIN is shown only here.
type AddResponse struct {
	OK       bool   `json:"ok"`
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

// RemoveResponse is the response for the remove action
type RemoveResponse struct {
	OK      bool   `json:"ok"`
	Removed string `json:"removed"`
}

// HealthResponse is the response for GET /api/health
type HealthResponse struct {
	OK     bool   `json:"ok"`
	Status string `json:"status"`
}
