package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case ListResult:
		o.printList(v)
	case UpdateResult:
		o.printPlayer(v.Player)
	case AddResult:
		o.printAddResult(v)
	case RemoveResult:
		fmt.Fprintf(o.w, "Removed: %s\n", v.Removed)
	case HealthResult:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	Username  string `json:"username"`
	Active    bool   `json:"active"`
	UpdatedAt string `json:"updatedAt"`
}

// ListResult response type
type ListResult struct {
	OK      bool     `json:"ok"`
	Players []Player `json:"players"`
}

// UpdateResult response type
type UpdateResult struct {
	OK     bool   `json:"ok"`
	Player Player `json:"player"`
}

// AddResult response type
type AddResult struct {
	OK       bool   `json:"ok"`
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

// RemoveResult response type
type RemoveResult struct {
	OK      bool   `json:"ok"`
	Removed string `json:"removed"`
}

// HealthResult response type
type HealthResult struct {
	OK     bool   `json:"ok"`
	Status string `json:"status"`
}

func statusLabel(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

func (o *Output) printList(l ListResult) {
	if len(l.Players) == 0 {
		fmt.Fprintln(o.w, "No players on the roster")
		return
	}

	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PLAYER\tSTATUS\tUPDATED")
	for _, p := range l.Players {
		updated := p.UpdatedAt
		if updated == "" {
			updated = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Username, statusLabel(p.Active), updated)
	}
	_ = tw.Flush()
}

func (o *Output) printPlayer(p Player) {
	fmt.Fprintf(o.w, "Player: %s\n", p.Username)
	fmt.Fprintf(o.w, "Status: %s\n", statusLabel(p.Active))
	fmt.Fprintf(o.w, "Updated: %s\n", p.UpdatedAt)
}

func (o *Output) printAddResult(a AddResult) {
	fmt.Fprintf(o.w, "Added: %s\n", a.Username)
	fmt.Fprintf(o.w, "PIN: %s\n", a.PIN)
	fmt.Fprintln(o.w, "Share this PIN with the player now; it cannot be shown again.")
}
