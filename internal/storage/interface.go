package storage

import (
	"context"

	"github.com/mcoot/r6status/internal/model"
)

// Storage defines the interface for roster persistence.
// Each operation is a single round trip; there are no multi-key transactions.
type Storage interface {
	// Record operations (keyed by lowercase username)
	GetRecord(ctx context.Context, username string) (*model.PlayerRecord, error)
	GetRecords(ctx context.Context, usernames []string) (map[string]*model.PlayerRecord, error)
	SaveRecord(ctx context.Context, record *model.PlayerRecord) error
	// CreateRecord stores record only if no record exists for its key.
	// Returns model.ErrPlayerExists otherwise.
	CreateRecord(ctx context.Context, record *model.PlayerRecord) error
	DeleteRecord(ctx context.Context, username string) error

	// Roster set operations
	ListUsernames(ctx context.Context) ([]string, error)
	AddUsername(ctx context.Context, username string) error
	RemoveUsername(ctx context.Context, usernames ...string) error

	// Ping checks that the backend is reachable
	Ping(ctx context.Context) error
	Close() error
}
