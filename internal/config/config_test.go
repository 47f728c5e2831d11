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

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 16, cfg.DefaultLength)
	assert.False(t, cfg.AuthEnabled(), "auth should be off without JWT_SECRET")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY", "90m")
	t.Setenv("RATE_LIMIT_RPS", "1.5")
	t.Setenv("DEFAULT_LENGTH", "24")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.AuthEnabled(), "auth should be on when JWT_SECRET is set")
	assert.Equal(t, 90*time.Minute, cfg.JWTExpiry)
	assert.Equal(t, 1.5, cfg.RateLimitRPS)
	assert.Equal(t, 24, cfg.DefaultLength)
}

func TestLoadProductionRequiresSecret(t *testing.T) {
	t.Setenv("ENV", "production")

	_, err := Load()
	assert.ErrorIs(t, err, ErrProductionSecret)

	t.Setenv("JWT_SECRET", "s3cret")
	_, err = Load()
	assert.NoError(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"RATE_LIMIT_RPS", "0"},
		{"RATE_LIMIT_BURST", "-1"},
		{"MAX_COUNT", "0"},
		{"JWT_EXPIRY", "soon"},
		{"DEFAULT_LENGTH", "2"},
		{"DEFAULT_LENGTH", "0"},
		{"DEFAULT_LENGTH", "500"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadDefaultLengthBounds(t *testing.T) {
	for _, v := range []string{"4", "128"} {
		t.Setenv("DEFAULT_LENGTH", v)
		_, err := Load()
		assert.NoError(t, err, "DEFAULT_LENGTH=%s", v)
	}
}
