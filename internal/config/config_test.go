package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/pagination/internal/config"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func clearSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("APP_POSTGRES_USER", "")
	t.Setenv("APP_POSTGRES_PASSWORD", "")
	t.Setenv("APP_POSTGRES_DB", "")
	t.Setenv("APP_CACHE_REDIS_URL", "")
}

const baseYAML = `
logger:
  level: info
  format: json

postgres:
  host: 127.0.0.1
  port: 5433
  sslmode: disable
  max_conns: 5
  min_conns: 1

pagination:
  default_page_size: 20
  max_page_size: 100
  spread: 3

listing:
  table: articles
  columns: [id, title]
  order_by: [id]
  page: 2
`

func TestConfigLoad_FromYAMLAndEnv(t *testing.T) {
	clearSecrets(t)
	path := writeTempConfig(t, baseYAML)

	t.Setenv("APP_POSTGRES_USER", "testuser")
	t.Setenv("APP_POSTGRES_PASSWORD", "testpass")
	t.Setenv("APP_POSTGRES_DB", "testdb")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "testuser", cfg.Postgres.User)
	assert.Equal(t, "testpass", cfg.Postgres.Password)
	assert.Equal(t, "testdb", cfg.Postgres.DBName)
	assert.Equal(t, "127.0.0.1", cfg.Postgres.Host)
	assert.Equal(t, 5433, cfg.Postgres.Port)
	assert.Equal(t, uint(20), cfg.Pagination.DefaultPageSize)
	assert.Equal(t, uint(100), cfg.Pagination.MaxPageSize)
	assert.Equal(t, uint(3), cfg.Pagination.Spread)
	assert.Equal(t, "articles", cfg.Listing.Table)
	assert.Equal(t, []string{"id", "title"}, cfg.Listing.Columns)
	assert.Equal(t, uint(2), cfg.Listing.Page)
	assert.Equal(t, "local", cfg.Cache.Backend, "cache backend default")
	assert.Equal(t, 30, cfg.Cache.TTL, "cache ttl default")
}

func TestConfigLoad_MissingRequiredEnvFails(t *testing.T) {
	clearSecrets(t)
	path := writeTempConfig(t, baseYAML)

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestConfigLoad_DefaultAboveMaxFails(t *testing.T) {
	clearSecrets(t)
	path := writeTempConfig(t, `
postgres:
  user: u
  password: p
  db: d
pagination:
  default_page_size: 200
  max_page_size: 100
listing:
  table: articles
`)
	_, err := config.Load(path)
	assert.ErrorContains(t, err, "pagination")
}

func TestConfigLoad_RedisBackendNeedsURL(t *testing.T) {
	clearSecrets(t)
	yaml := `
postgres:
  user: u
  password: p
  db: d
cache:
  backend: redis
listing:
  table: articles
`
	_, err := config.Load(writeTempConfig(t, yaml))
	assert.ErrorContains(t, err, "cache")

	t.Setenv("APP_CACHE_REDIS_URL", "redis://localhost:6379/0")
	cfg, err := config.Load(writeTempConfig(t, yaml))
	require.NoError(t, err)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Cache.RedisURL)
}

func TestConfigLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
