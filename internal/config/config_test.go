package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "taskpal", cfg.AppName)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Equal(t, "./data/taskpal.db", cfg.Storage.Path)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 0, cfg.Chat.HistoryLimit)
	assert.Equal(t, 5*time.Second, cfg.Context.RequestTimeout)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CHAT_HISTORY_LIMIT", "50")
	t.Setenv("AI_TIMEOUT_SECONDS", "10")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Address())
	assert.Equal(t, 50, cfg.Chat.HistoryLimit)
	assert.Equal(t, 10*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 2*time.Second, cfg.Context.RequestTimeout)
}

func TestDurationParsingFallsBackOnGarbage(t *testing.T) {
	t.Setenv("AI_TIMEOUT_SECONDS", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
}
