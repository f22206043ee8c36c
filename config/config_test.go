// file: config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesPoolDefaults(t *testing.T) {
	path := writeConfigFile(t, `
[server]
addr = ":8080"

[database]
dsn = "user:pass@tcp(127.0.0.1:3306)/novactf"

[redis]
addr = "127.0.0.1:6379"

[jwt]
secret = "0123456789abcdef0123456789abcdef"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	assert.Equal(t, 100, cfg.Database.MaxOpenConns)
	assert.Equal(t, 60, cfg.Database.ConnMaxLifetimeMins)
	assert.Equal(t, 100, cfg.Redis.PoolSize)
}

func TestLoadRejectsShortJWTSecret(t *testing.T) {
	path := writeConfigFile(t, `
[server]
addr = ":8080"

[database]
dsn = "user:pass@tcp(127.0.0.1:3306)/novactf"

[redis]
addr = "127.0.0.1:6379"

[jwt]
secret = "short"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
