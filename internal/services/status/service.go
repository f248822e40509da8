package status

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/mcoot/r6status/internal/dependencies/clock"
	"github.com/mcoot/r6status/internal/dependencies/random"
	"github.com/mcoot/r6status/internal/metrics"
	"github.com/mcoot/r6status/internal/model"
	"github.com/mcoot/r6status/internal/services/auth"
	"github.com/mcoot/r6status/internal/storage"
)

// PINLength is the length of generated player PINs
const PINLength = 4

// Operation names used for metrics
const (
	OpList   = "list"
	OpUpdate = "update"
	OpAdd    = "add"
	OpRemove = "remove"
)

// AddResult carries the plaintext PIN of a newly added player.
// The PIN is never persisted and cannot be retrieved again.
type AddResult struct {
	Username string
	PIN      string
}

// Service implements the roster status operations
type Service struct {
	storage storage.Storage
	auth    *auth.Service
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new status Service
func New(
	storage storage.Storage,
	auth *auth.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage: storage,
		auth:    auth,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// List returns every roster entry sorted by username.
// A roster entry without a record is reported as inactive with no timestamp.
func (s *Service) List(ctx context.Context) (players []model.PlayerStatus, err error) {
	defer s.observe(OpList, time.Now(), &err)

	usernames, err := s.storage.ListUsernames(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.storage.GetRecords(ctx, usernames)
	if err != nil {
		return nil, err
	}

	players = make([]model.PlayerStatus, 0, len(usernames))
	for _, username := range usernames {
		entry := model.PlayerStatus{Username: username}
		if record, ok := records[model.UsernameKey(username)]; ok {
			entry.Active = record.Active
			entry.UpdatedAt = record.UpdatedAt
		}
		players = append(players, entry)
	}

	slices.SortFunc(players, func(a, b model.PlayerStatus) int {
		if c := strings.Compare(strings.ToLower(a.Username), strings.ToLower(b.Username)); c != 0 {
			return c
		}
		return strings.Compare(a.Username, b.Username)
	})

	metrics.RosterSize.Set(float64(len(players)))
	return players, nil
}

// Update sets a player's active flag after verifying their PIN.
// A rejected PIN leaves the record untouched.
func (s *Service) Update(ctx context.Context, username, pin string, active bool) (_ *model.PlayerStatus, err error) {
	defer s.observe(OpUpdate, time.Now(), &err)

	username = model.NormalizeUsername(username)
	if username == "" || pin == "" {
		return nil, fmt.Errorf("%w: username and pin are required", model.ErrInvalidInput)
	}
	if !s.auth.PlayerPINsEnabled() {
		return nil, auth.ErrMisconfigured
	}

	record, err := s.storage.GetRecord(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := s.auth.VerifyPIN(record, pin); err != nil {
		s.logger.Warn("status update rejected", slog.String("username", record.Username))
		return nil, err
	}

	record.Active = active
	record.UpdatedAt = model.FormatTimestamp(s.clock.Now())

	if err := s.storage.SaveRecord(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("status updated",
		slog.String("username", record.Username),
		slog.Bool("active", record.Active),
	)

	status := record.Status()
	return &status, nil
}

// Add creates a player record and joins the username to the roster.
// If pin is empty a random numeric PIN of PINLength digits is generated.
func (s *Service) Add(ctx context.Context, adminPIN, username, pin string) (_ *AddResult, err error) {
	defer s.observe(OpAdd, time.Now(), &err)

	username = model.NormalizeUsername(username)
	if adminPIN == "" || username == "" {
		return nil, fmt.Errorf("%w: adminPin and username are required", model.ErrInvalidInput)
	}

	if err := s.auth.VerifyAdmin(adminPIN); err != nil {
		s.logger.Warn("roster add rejected", slog.String("username", username))
		return nil, err
	}

	if pin == "" {
		pin = s.random.String(PINLength, random.Digits)
	}

	hash, err := s.auth.HashPIN(username, pin)
	if err != nil {
		return nil, err
	}

	now := model.FormatTimestamp(s.clock.Now())
	record := &model.PlayerRecord{
		Username:  username,
		PINHash:   hash,
		Active:    false,
		UpdatedAt: now,
		CreatedAt: now,
	}

	// Conditional put: a concurrent add of the same username gets ErrPlayerExists
	if err := s.storage.CreateRecord(ctx, record); err != nil {
		return nil, err
	}

	if err := s.storage.AddUsername(ctx, username); err != nil {
		// Drop the record so a retry is not rejected as a duplicate
		if delErr := s.storage.DeleteRecord(ctx, username); delErr != nil {
			s.logger.Error("roster update failed and record rollback failed",
				slog.String("username", username),
				slog.String("error", err.Error()),
				slog.String("rollback_error", delErr.Error()),
			)
		} else {
			s.logger.Error("roster update failed, record rolled back",
				slog.String("username", username),
				slog.String("error", err.Error()),
			)
		}
		return nil, err
	}

	s.logger.Info("player added", slog.String("username", username))

	return &AddResult{Username: username, PIN: pin}, nil
}

// Remove drops a player from the roster and deletes their record.
// Removing an unknown player succeeds.
func (s *Service) Remove(ctx context.Context, adminPIN, username string) (_ string, err error) {
	defer s.observe(OpRemove, time.Now(), &err)

	username = model.NormalizeUsername(username)
	if adminPIN == "" || username == "" {
		return "", fmt.Errorf("%w: adminPin and username are required", model.ErrInvalidInput)
	}

	if err := s.auth.VerifyAdmin(adminPIN); err != nil {
		s.logger.Warn("roster remove rejected", slog.String("username", username))
		return "", err
	}

	// The roster set holds the display form, which may differ in case
	members := []string{username}
	record, lookupErr := s.storage.GetRecord(ctx, username)
	switch {
	case lookupErr == nil:
		if record.Username != username {
			members = append(members, record.Username)
		}
	case errors.Is(lookupErr, model.ErrPlayerNotFound):
	default:
		return "", lookupErr
	}

	if err := s.storage.RemoveUsername(ctx, members...); err != nil {
		return "", err
	}
	if err := s.storage.DeleteRecord(ctx, username); err != nil {
		return "", err
	}

	s.logger.Info("player removed", slog.String("username", username))

	return username, nil
}

func (s *Service) observe(operation string, started time.Time, errp *error) {
	metrics.ObserveOperation(operation, Outcome(*errp), started)
}

// Outcome classifies an operation error for metrics and logs
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, model.ErrInvalidInput):
		return "bad_request"
	case errors.Is(err, model.ErrPlayerNotFound):
		return "not_found"
	case errors.Is(err, model.ErrPlayerExists):
		return "conflict"
	case errors.Is(err, auth.ErrInvalidPIN), errors.Is(err, auth.ErrInvalidAdminPIN):
		return "unauthorized"
	case errors.Is(err, auth.ErrMisconfigured):
		return "misconfigured"
	default:
		return "error"
	}
}
