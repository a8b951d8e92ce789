package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := &Config{
		Theme:   ThemeConfig{SourceMaps: true, Manifest: "/srv/site/theme.yaml", ProjectDir: "/srv/site"},
		Server:  ServerConfig{Address: "127.0.0.1:9000", Prefix: "/assets", Compress: false, ReadTimeout: 20 * time.Second, WriteTimeout: time.Minute},
		Cache:   CacheConfig{Backend: BackendBadger, Directory: filepath.Join(dir, "cache"), TTL: 36 * time.Hour},
		Build:   BuildConfig{OutputDir: "/srv/site/public", Workers: 2},
		Logging: LoggingConfig{Level: "debug", Format: "json"},
	}

	require.NoError(t, Save(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "read_timeout: 20s")
	assert.Contains(t, string(data), "ttl: 36h0m0s")

	loaded, err := LoadWithViper(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	cfg.Cache.Backend = "redis"

	err := Save(cfg, path)
	assert.ErrorIs(t, err, ErrInvalidBackend)
	assert.NoFileExists(t, path)
	assert.Equal(t, "redis", cfg.Cache.Backend)
}
