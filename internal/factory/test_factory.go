package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/r6status/internal/dependencies/mocks"
	"github.com/mcoot/r6status/internal/services/auth"
	"github.com/mcoot/r6status/internal/storage"
	"github.com/mcoot/r6status/internal/storage/memory"
)

// Secrets configured on every TestApp
const (
	TestSalt     = "test-salt"
	TestAdminPIN = "9999"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
// and in-memory storage
func NewTestApp() *TestApp {
	return NewTestAppWithStorage(memory.New())
}

// NewTestAppWithStorage creates a TestApp over the given storage backend
func NewTestAppWithStorage(store storage.Storage) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	authService := auth.New(auth.Config{Salt: TestSalt, AdminPIN: TestAdminPIN})
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, authService, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
