package cli

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientReturnsAPIErrorWithCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"ok":false,"error":{"code":"INVALID_PIN","message":"Invalid PIN"}}`))
	}))
	defer server.Close()

	c := NewClient(server.URL+"/", time.Second)
	err := c.Post(context.Background(), "/api/status", map[string]any{"action": "update"}, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "INVALID_PIN", apiErr.Code)
	assert.Equal(t, "Invalid PIN (INVALID_PIN)", err.Error())
}

func TestClientNonJSONErrorIncludesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	err := NewClient(server.URL, time.Second).Get(context.Background(), "/api/status", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestClientDecodesSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"ok":true,"status":"ok"}`))
	}))
	defer server.Close()

	var result HealthResult
	require.NoError(t, NewClient(server.URL, time.Second).Get(context.Background(), "/api/health", &result))
	assert.True(t, result.OK)
	assert.Equal(t, "ok", result.Status)
}
