package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/cookieter/cookieter-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_ValidLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
		t.Run(level, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{LogLevel: level})
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	log, err := Setup(config.ServerConfig{LogLevel: "verbose"})
	require.NoError(t, err)
	require.NotNil(t, log)

	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestFromContext_RoundTrip(t *testing.T) {
	log := slog.Default().With("component", "test")
	ctx := WithLogger(context.Background(), log)

	assert.Same(t, log, FromContext(ctx))
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestFromContextOrDefault(t *testing.T) {
	def := slog.Default().With("component", "fallback")

	assert.Same(t, def, FromContextOrDefault(context.Background(), def))

	attached := slog.Default().With("component", "attached")
	ctx := WithLogger(context.Background(), attached)
	assert.Same(t, attached, FromContextOrDefault(ctx, def))
}
