package config_test

import (
	"testing"
	"time"

	"visionmines/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "APP_ENV", "REDIS_ADDR", "FORM_RESET_DELAY", "VIEW_IDLE_TTL",
		"VIEW_SWEEP_INTERVAL", "SUBMIT_RATE_LIMIT", "SUBMIT_RATE_BURST",
		"HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "HTTP_IDLE_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := config.FromEnv()

	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.FormResetDelay)
	assert.Equal(t, 30*time.Minute, cfg.ViewIdleTTL)
	assert.Equal(t, time.Minute, cfg.ViewSweepInterval)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 1.0, cfg.SubmitRateLimit)
	assert.Equal(t, 5, cfg.SubmitRateBurst)
	assert.False(t, cfg.Production())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("FORM_RESET_DELAY", "500ms")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SUBMIT_RATE_LIMIT", "0.5")
	t.Setenv("SUBMIT_RATE_BURST", "2")

	cfg, err := config.FromEnv()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.Production())
	assert.Equal(t, 500*time.Millisecond, cfg.FormResetDelay)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0.5, cfg.SubmitRateLimit)
	assert.Equal(t, 2, cfg.SubmitRateBurst)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct{ key, value string }{
		{"FORM_RESET_DELAY", "three"},
		{"VIEW_IDLE_TTL", "-1m"},
		{"SUBMIT_RATE_LIMIT", "fast"},
		{"SUBMIT_RATE_BURST", "-3"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.FromEnv()

			assert.ErrorContains(t, err, tt.key)
		})
	}
}
