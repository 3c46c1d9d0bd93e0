package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "CONTENT_ALLOWED_HOSTS", "CONTENT_FETCH_TIMEOUT", "APP_ENV", "RATE_LIMIT_PER_MINUTE"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, []string{"ucarecdn.com"}, cfg.ContentAllowedHosts)
	assert.Equal(t, 30*time.Second, cfg.ContentFetchTimeout)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
	assert.False(t, cfg.IsProduction())
	assert.Contains(t, cfg.DSN(), "sslmode=disable")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/p.db")
	t.Setenv("CONTENT_ALLOWED_HOSTS", " ucarecdn.com, cdn.example.com ,")
	t.Setenv("CONTENT_FETCH_TIMEOUT", "not-a-duration")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")

	cfg := Load()
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/tmp/p.db?_fk=1", cfg.DSN())
	assert.Equal(t, []string{"ucarecdn.com", "cdn.example.com"}, cfg.ContentAllowedHosts)
	assert.Equal(t, 30*time.Second, cfg.ContentFetchTimeout)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 0, cfg.RateLimitPerMinute)
}
