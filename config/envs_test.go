package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("REST_PORT", "8080")
	t.Setenv("DB_NAME", "maze")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_URI", "mongodb://localhost:27017")
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
		assert.Equal(t, "release", cfg.GinMode)
		assert.Equal(t, "mongodb://localhost:27017", cfg.DBURI)
		assert.Equal(t, 24*time.Hour, cfg.ArchiveInterval)
		assert.Equal(t, 86400, cfg.LeaderboardTTLSeconds)
		assert.False(t, cfg.ArchiveReset)
		assert.False(t, cfg.Debug)
	})

	t.Run("Mongo URI from parts", func(t *testing.T) {
		setRequired(t)
		t.Setenv("DB_URI", "")
		t.Setenv("DB_USER", "root")
		t.Setenv("DB_PASS", "pw")
		t.Setenv("DB_HOST", "mongo")
		t.Setenv("DB_PORT", "27017")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "mongodb://root:pw@mongo:27017", cfg.DBURI)
	})

	t.Run("Overrides", func(t *testing.T) {
		setRequired(t)
		t.Setenv("ARCHIVE_INTERVAL", "1h")
		t.Setenv("ARCHIVE_RESET", "true")
		t.Setenv("DEBUG", "1")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, time.Hour, cfg.ArchiveInterval)
		assert.True(t, cfg.ArchiveReset)
		assert.True(t, cfg.Debug)
	})

	t.Run("Malformed port", func(t *testing.T) {
		setRequired(t)
		t.Setenv("REST_PORT", "http")

		_, err := Load()
		assert.Error(t, err)
	})
}
