package memory

import (
	"context"
	"sync"

	"github.com/mcoot/r6status/internal/model"
	"github.com/mcoot/r6status/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	roster  map[string]struct{}
	records map[string]model.PlayerRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		roster:  make(map[string]struct{}),
		records: make(map[string]model.PlayerRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Ping always succeeds
func (s *Storage) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op
func (s *Storage) Close() error {
	return nil
}

// Record operations
// Records are stored by value so callers never share state with the store.

func (s *Storage) GetRecord(ctx context.Context, username string) (*model.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[model.UsernameKey(username)]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return &record, nil
}

func (s *Storage) GetRecords(ctx context.Context, usernames []string) (map[string]*model.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(map[string]*model.PlayerRecord, len(usernames))
	for _, u := range usernames {
		key := model.UsernameKey(u)
		if record, ok := s.records[key]; ok {
			result[key] = &record
		}
	}
	return result, nil
}

func (s *Storage) SaveRecord(ctx context.Context, record *model.PlayerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Key()] = *record
	return nil
}

func (s *Storage) CreateRecord(ctx context.Context, record *model.PlayerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := record.Key()
	if _, ok := s.records[key]; ok {
		return model.ErrPlayerExists
	}
	s.records[key] = *record
	return nil
}

func (s *Storage) DeleteRecord(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, model.UsernameKey(username))
	return nil
}

// Roster set operations

func (s *Storage) ListUsernames(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	usernames := make([]string, 0, len(s.roster))
	for u := range s.roster {
		usernames = append(usernames, u)
	}
	return usernames, nil
}

func (s *Storage) AddUsername(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roster[username] = struct{}{}
	return nil
}

func (s *Storage) RemoveUsername(ctx context.Context, usernames ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range usernames {
		delete(s.roster, u)
	}
	return nil
}
