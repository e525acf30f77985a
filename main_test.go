package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-webapi/internal/config"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
	}{
		{level: "debug", enabled: slog.LevelDebug},
		{level: "info", enabled: slog.LevelInfo},
		{level: "warn", enabled: slog.LevelWarn},
		{level: "error", enabled: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := initLogger(&config.Config{LogLevel: tt.level})

			assert.True(t, logger.Enabled(context.Background(), tt.enabled))
			assert.False(t, logger.Enabled(context.Background(), tt.enabled-1))
		})
	}
}
