package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScope(t *testing.T) {
	attr := Scope("pageview")
	assert.Equal(t, "scope", attr.Key)
	assert.Equal(t, "pageview", attr.Value.String())
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level    string
		enabled  slog.Level
		disabled *slog.Level
	}{
		{"", slog.LevelInfo, ptr(slog.LevelDebug)},
		{"debug", slog.LevelDebug, nil},
		{"DeBuG", slog.LevelDebug, nil},
		{"info", slog.LevelInfo, ptr(slog.LevelDebug)},
		{"warn", slog.LevelWarn, ptr(slog.LevelInfo)},
		{"warning", slog.LevelWarn, ptr(slog.LevelInfo)},
		{"error", slog.LevelError, ptr(slog.LevelWarn)},
		{"nonsense", slog.LevelInfo, ptr(slog.LevelDebug)},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run("LOG_LEVEL="+tt.level, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.level)
			t.Setenv("GO_ENV", "")

			log := NewLogger()
			assert.True(t, log.Enabled(ctx, tt.enabled))
			if tt.disabled != nil {
				assert.False(t, log.Enabled(ctx, *tt.disabled))
			}
		})
	}
}

func TestNewLogger_Production(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GO_ENV", "production")

	log := NewLogger()
	_, isJSON := log.Handler().(*slog.JSONHandler)
	assert.True(t, isJSON)
}

func ptr(l slog.Level) *slog.Level { return &l }
