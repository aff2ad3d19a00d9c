package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	unsetEnv(t, "WEBSITE_PORT", "WEBSITE_ADDRESS", "ENVIRONMENT", "N8N_WEBHOOK_URL",
		"CHAT_ENABLE_STREAMING", "CHAT_LOAD_PREVIOUS_SESSION", "VIEW_TTL", "VIEW_SWEEP_INTERVAL")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 4002, cfg.Port)
	assert.Equal(t, ":4002", cfg.Addr())
	assert.Equal(t, 30*time.Minute, cfg.Views.TTL)
	assert.Equal(t, time.Minute, cfg.Views.SweepInterval)
	assert.True(t, cfg.Chat.LoadPreviousSession)
	assert.False(t, cfg.Chat.EnableStreaming)
	assert.Empty(t, cfg.Chat.WebhookURL)
	assert.Contains(t, cfg.Chat.ScriptURL, "@n8n/chat")
	assert.False(t, cfg.IsProduction())
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("WEBSITE_PORT", "8080")
	t.Setenv("WEBSITE_ADDRESS", "127.0.0.1")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("N8N_WEBHOOK_URL", "https://n8n.example.com/webhook/abc/chat")
	t.Setenv("CHAT_ENABLE_STREAMING", "true")
	t.Setenv("VIEW_TTL", "5m")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://n8n.example.com/webhook/abc/chat", cfg.Chat.WebhookURL)
	assert.True(t, cfg.Chat.EnableStreaming)
	assert.Equal(t, 5*time.Minute, cfg.Views.TTL)
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"port out of range", "WEBSITE_PORT", "70000"},
		{"port not a number", "WEBSITE_PORT", "abc"},
		{"zero ttl", "VIEW_TTL", "0s"},
		{"zero sweep", "VIEW_SWEEP_INTERVAL", "0s"},
		{"zero rate", "VIEW_RATE_LIMIT_RPM", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}

// unsetEnv clears keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
