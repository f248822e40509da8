package e2e_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/r6status/internal/cli"
	"github.com/mcoot/r6status/internal/factory"
	"github.com/mcoot/r6status/internal/routes"
	"github.com/mcoot/r6status/internal/services/auth"
	redisstorage "github.com/mcoot/r6status/internal/storage/redis"
	"github.com/mcoot/r6status/internal/testutil"
)

const (
	testSalt     = "e2e-salt"
	testAdminPIN = "2468"
)

// cliRunner executes the CLI root command in-process against a server
type cliRunner struct {
	serverURL string
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetArgs(fullArgs)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	if err != nil {
		return stderr.String(), err
	}
	return stdout.String(), nil
}

// startTestServer runs the full HTTP stack over a miniredis-backed store
func startTestServer(t *testing.T) *cliRunner {
	t.Helper()

	mr := miniredis.RunT(t)
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mr.Addr()
	redisCfg.Team = "e2e"

	logger := testutil.NopLogger()
	app, err := factory.New(factory.Config{
		Logger:      logger,
		StorageType: factory.StorageTypeRedis,
		RedisConfig: &redisCfg,
		AuthConfig:  auth.Config{Salt: testSalt, AdminPIN: testAdminPIN},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Storage.Close() })

	server := httptest.NewServer(routes.New(routes.Config{
		Logger: logger,
		App:    app,
		Team:   "e2e",
	}))
	t.Cleanup(server.Close)

	return &cliRunner{serverURL: server.URL}
}

// Response types for JSON parsing
type playerResponse struct {
	Username  string `json:"username"`
	Active    bool   `json:"active"`
	UpdatedAt string `json:"updatedAt"`
}

type listResponse struct {
	OK      bool             `json:"ok"`
	Players []playerResponse `json:"players"`
}

type updateResponse struct {
	OK     bool           `json:"ok"`
	Player playerResponse `json:"player"`
}

type addResponse struct {
	OK       bool   `json:"ok"`
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

type removeResponse struct {
	OK      bool   `json:"ok"`
	Removed string `json:"removed"`
}

type healthResponse struct {
	OK     bool   `json:"ok"`
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	runner := startTestServer(t)

	output, err := runner.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_EmptyList(t *testing.T) {
	runner := startTestServer(t)

	output, err := runner.run("list")
	require.NoError(t, err, "output: %s", output)
	assert.JSONEq(t, `{"ok":true,"players":[]}`, output)
}

func TestCLI_RosterFlow(t *testing.T) {
	runner := startTestServer(t)

	// Captain adds a player without a PIN
	output, err := runner.run("add", "--user", "Thermite", "--admin-pin", testAdminPIN)
	require.NoError(t, err, "output: %s", output)

	var added addResponse
	require.NoError(t, json.Unmarshal([]byte(output), &added))
	assert.Equal(t, "Thermite", added.Username)
	assert.Regexp(t, `^[0-9]{4}$`, added.PIN)

	// Adding again conflicts
	_, err = runner.run("add", "--user", "thermite", "--admin-pin", testAdminPIN)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PLAYER_EXISTS")

	// Wrong PIN is rejected
	_, err = runner.run("update", "--user", "thermite", "--pin", "wrong", "--active=true")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_PIN")

	// Player marks themselves active
	output, err = runner.run("update", "--user", "thermite", "--pin", added.PIN, "--active=true")
	require.NoError(t, err, "output: %s", output)

	var updated updateResponse
	require.NoError(t, json.Unmarshal([]byte(output), &updated))
	assert.Equal(t, "Thermite", updated.Player.Username)
	assert.True(t, updated.Player.Active)
	assert.NotEmpty(t, updated.Player.UpdatedAt)

	// List shows the player as active
	output, err = runner.run("list")
	require.NoError(t, err, "output: %s", output)

	var list listResponse
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	require.Len(t, list.Players, 1)
	assert.Equal(t, updated.Player, list.Players[0])

	// Captain removes the player
	output, err = runner.run("remove", "--user", "Thermite", "--admin-pin", testAdminPIN)
	require.NoError(t, err, "output: %s", output)

	var removed removeResponse
	require.NoError(t, json.Unmarshal([]byte(output), &removed))
	assert.Equal(t, "Thermite", removed.Removed)

	output, err = runner.run("list")
	require.NoError(t, err, "output: %s", output)
	assert.JSONEq(t, `{"ok":true,"players":[]}`, output)
}

func TestCLI_AdminPINFromEnv(t *testing.T) {
	runner := startTestServer(t)
	t.Setenv("R6STATUS_ADMIN_PIN", testAdminPIN)

	output, err := runner.run("add", "--user", "Ash", "--pin", "1357")
	require.NoError(t, err, "output: %s", output)

	var added addResponse
	require.NoError(t, json.Unmarshal([]byte(output), &added))
	assert.Equal(t, "1357", added.PIN)
}

func TestCLI_WrongAdminPIN(t *testing.T) {
	runner := startTestServer(t)

	_, err := runner.run("remove", "--user", "Ash", "--admin-pin", "0000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_ADMIN_PIN")
}

func TestCLI_UpdateRequiresActiveFlag(t *testing.T) {
	runner := startTestServer(t)

	_, err := runner.run("update", "--user", "Ash", "--pin", "1234")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "active")
}
