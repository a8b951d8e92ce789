package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/quantmind-br/themebundle/internal/utils"
)

// Validation errors
var (
	ErrInvalidBackend   = errors.New("invalid cache backend")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidDuration  = errors.New("duration must not be negative")
)

// Config represents the application configuration
type Config struct {
	Theme   ThemeConfig   `mapstructure:"theme" yaml:"theme"`
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Cache   CacheConfig   `mapstructure:"cache" yaml:"cache"`
	Build   BuildConfig   `mapstructure:"build" yaml:"build"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ThemeConfig contains theme combining settings
type ThemeConfig struct {
	SourceMaps bool   `mapstructure:"sourcemaps" yaml:"sourcemaps"`
	Manifest   string `mapstructure:"manifest" yaml:"manifest"`
	ProjectDir string `mapstructure:"project_dir" yaml:"project_dir"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Address      string        `mapstructure:"address" yaml:"address"`
	Prefix       string        `mapstructure:"prefix" yaml:"prefix"`
	Compress     bool          `mapstructure:"compress" yaml:"compress"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
}

// CacheConfig contains artifact store settings
type CacheConfig struct {
	Backend   string        `mapstructure:"backend" yaml:"backend"`
	Directory string        `mapstructure:"directory" yaml:"directory"`
	TTL       time.Duration `mapstructure:"ttl" yaml:"ttl"`
}

// BuildConfig contains settings for writing outputs to disk
type BuildConfig struct {
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	Workers   int    `mapstructure:"workers" yaml:"workers"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and fills in defaults for empty
// values
func (c *Config) Validate() error {
	if c.Theme.Manifest == "" {
		c.Theme.Manifest = DefaultManifest
	}
	c.Theme.Manifest = utils.ExpandPath(c.Theme.Manifest)
	c.Theme.ProjectDir = utils.ExpandPath(c.Theme.ProjectDir)

	if c.Server.Address == "" {
		c.Server.Address = DefaultAddress
	}
	if c.Server.ReadTimeout < 0 {
		return fmt.Errorf("server.read_timeout: %w", ErrInvalidDuration)
	}
	if c.Server.WriteTimeout < 0 {
		return fmt.Errorf("server.write_timeout: %w", ErrInvalidDuration)
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}

	c.Cache.Backend = strings.ToLower(strings.TrimSpace(c.Cache.Backend))
	switch c.Cache.Backend {
	case "":
		c.Cache.Backend = DefaultCacheBackend
	case BackendMemory, BackendBadger:
	default:
		return fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidBackend, c.Cache.Backend, BackendMemory, BackendBadger)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl: %w", ErrInvalidDuration)
	}
	if c.Cache.Directory == "" {
		c.Cache.Directory = CacheDir()
	}
	c.Cache.Directory = utils.ExpandPath(c.Cache.Directory)

	if c.Build.OutputDir == "" {
		c.Build.OutputDir = DefaultBuildOutputDir
	}
	if c.Build.Workers < 1 {
		c.Build.Workers = DefaultBuildWorkers
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if !utils.ValidLogLevel(c.Logging.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "":
		c.Logging.Format = DefaultLogFormat
	case "pretty", "json":
	default:
		return fmt.Errorf("%w: %q (want pretty or json)", ErrInvalidLogFormat, c.Logging.Format)
	}

	return nil
}
