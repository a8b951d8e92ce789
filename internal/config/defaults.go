package config

import (
	"os"
	"path/filepath"
	"time"
)

// Cache backends
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
)

// Default values
const (
	// Theme defaults
	DefaultSourceMaps = false
	DefaultManifest   = "./theme.yaml"

	// Server defaults
	DefaultAddress      = ":8080"
	DefaultPrefix       = "/_/theme"
	DefaultCompress     = true
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 30 * time.Second

	// Cache defaults
	DefaultCacheBackend = BackendMemory
	DefaultCacheTTL     = time.Duration(0)

	// Build defaults
	DefaultBuildOutputDir = "./public/theme"
	DefaultBuildWorkers   = 4

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".themebundle"
	}
	return filepath.Join(home, ".themebundle")
}

// CacheDir returns the cache directory path
func CacheDir() string {
	return filepath.Join(ConfigDir(), "cache")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Theme: ThemeConfig{
			SourceMaps: DefaultSourceMaps,
			Manifest:   DefaultManifest,
		},
		Server: ServerConfig{
			Address:      DefaultAddress,
			Prefix:       DefaultPrefix,
			Compress:     DefaultCompress,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
		},
		Cache: CacheConfig{
			Backend:   DefaultCacheBackend,
			Directory: CacheDir(),
			TTL:       DefaultCacheTTL,
		},
		Build: BuildConfig{
			OutputDir: DefaultBuildOutputDir,
			Workers:   DefaultBuildWorkers,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
