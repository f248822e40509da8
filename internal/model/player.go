package model

import (
	"strings"
	"time"
)

// TimestampLayout is the ISO-8601 form used for persisted timestamps
// (UTC, millisecond precision, "Z" suffix)
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in TimestampLayout
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// NormalizeUsername trims surrounding whitespace, preserving case for display
func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

// UsernameKey derives the case-insensitive storage key for a username
func UsernameKey(username string) string {
	return strings.ToLower(NormalizeUsername(username))
}

// PlayerRecord is the persisted per-player state.
// PINHash is set once on creation and never rotated.
type PlayerRecord struct {
	Username  string `json:"username"`
	PINHash   string `json:"pinHash"`
	Active    bool   `json:"active"`
	UpdatedAt string `json:"updatedAt"`
	CreatedAt string `json:"createdAt"`
}

// Key returns the storage key component for this record
func (r *PlayerRecord) Key() string {
	return UsernameKey(r.Username)
}

// Status returns the public view of the record
func (r *PlayerRecord) Status() PlayerStatus {
	return PlayerStatus{
		Username:  r.Username,
		Active:    r.Active,
		UpdatedAt: r.UpdatedAt,
	}
}

// PlayerStatus is the public view of a roster entry (never carries the PIN hash)
type PlayerStatus struct {
	Username  string
	Active    bool
	UpdatedAt string
}
