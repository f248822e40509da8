package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/mcoot/r6status/internal/model"
	"github.com/mcoot/r6status/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	keys   keys
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	team := cfg.Team
	if team == "" {
		team = DefaultConfig().Team
	}
	return &Storage{
		client: client,
		keys:   keys{team: team},
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ping checks the Redis connection
func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Record operations

func (s *Storage) GetRecord(ctx context.Context, username string) (*model.PlayerRecord, error) {
	data, err := s.client.Get(ctx, s.keys.record(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("get record: %w", err)
	}

	var record model.PlayerRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return &record, nil
}

func (s *Storage) GetRecords(ctx context.Context, usernames []string) (map[string]*model.PlayerRecord, error) {
	records := make(map[string]*model.PlayerRecord, len(usernames))
	if len(usernames) == 0 {
		return records, nil
	}

	recordKeys := make([]string, len(usernames))
	for i, u := range usernames {
		recordKeys[i] = s.keys.record(u)
	}

	// Fetch all records in one round trip using MGET
	values, err := s.client.MGet(ctx, recordKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get records: %w", err)
	}

	for _, val := range values {
		raw, ok := val.(string)
		if !ok {
			continue // Record missing
		}
		var record model.PlayerRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			continue // Skip invalid data
		}
		records[record.Key()] = &record
	}

	return records, nil
}

func (s *Storage) SaveRecord(ctx context.Context, record *model.PlayerRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.keys.record(record.Username), data, 0).Err(); err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

func (s *Storage) CreateRecord(ctx context.Context, record *model.PlayerRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	// SETNX makes the existence check and the write a single atomic step
	created, err := s.client.SetNX(ctx, s.keys.record(record.Username), data, 0).Result()
	if err != nil {
		return fmt.Errorf("create record: %w", err)
	}
	if !created {
		return model.ErrPlayerExists
	}
	return nil
}

func (s *Storage) DeleteRecord(ctx context.Context, username string) error {
	if err := s.client.Del(ctx, s.keys.record(username)).Err(); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

// Roster set operations

func (s *Storage) ListUsernames(ctx context.Context) ([]string, error) {
	usernames, err := s.client.SMembers(ctx, s.keys.roster()).Result()
	if err != nil {
		return nil, fmt.Errorf("list usernames: %w", err)
	}
	return usernames, nil
}

func (s *Storage) AddUsername(ctx context.Context, username string) error {
	if err := s.client.SAdd(ctx, s.keys.roster(), username).Err(); err != nil {
		return fmt.Errorf("add username: %w", err)
	}
	return nil
}

func (s *Storage) RemoveUsername(ctx context.Context, usernames ...string) error {
	if len(usernames) == 0 {
		return nil
	}

	// Convert []string to []interface{} for SRem
	members := make([]interface{}, len(usernames))
	for i, u := range usernames {
		members[i] = u
	}

	if err := s.client.SRem(ctx, s.keys.roster(), members...).Err(); err != nil {
		return fmt.Errorf("remove username: %w", err)
	}
	return nil
}
