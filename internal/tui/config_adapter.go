package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/quantmind-br/themebundle/internal/config"
)

// ConfigValues holds form values that map to Config struct.
// Numeric and duration fields are stored as strings for form editing.
type ConfigValues struct {
	Manifest   string
	ProjectDir string
	SourceMaps bool

	Address      string
	Prefix       string
	Compress     bool
	ReadTimeout  string
	WriteTimeout string

	CacheBackend   string
	CacheDirectory string
	CacheTTL       string

	BuildOutputDir string
	BuildWorkers   string

	LogLevel  string
	LogFormat string
}

// FromConfig converts a Config to ConfigValues for form editing
func FromConfig(cfg *config.Config) *ConfigValues {
	return &ConfigValues{
		Manifest:   cfg.Theme.Manifest,
		ProjectDir: cfg.Theme.ProjectDir,
		SourceMaps: cfg.Theme.SourceMaps,

		Address:      cfg.Server.Address,
		Prefix:       cfg.Server.Prefix,
		Compress:     cfg.Server.Compress,
		ReadTimeout:  formatDuration(cfg.Server.ReadTimeout),
		WriteTimeout: formatDuration(cfg.Server.WriteTimeout),

		CacheBackend:   cfg.Cache.Backend,
		CacheDirectory: cfg.Cache.Directory,
		CacheTTL:       formatDuration(cfg.Cache.TTL),

		BuildOutputDir: cfg.Build.OutputDir,
		BuildWorkers:   strconv.Itoa(cfg.Build.Workers),

		LogLevel:  cfg.Logging.Level,
		LogFormat: cfg.Logging.Format,
	}
}

// ToConfig converts ConfigValues back to a Config struct
func (v *ConfigValues) ToConfig() (*config.Config, error) {
	readTimeout, err := parseDurationOrDefault(v.ReadTimeout, config.DefaultReadTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid read_timeout: %w", err)
	}

	writeTimeout, err := parseDurationOrDefault(v.WriteTimeout, config.DefaultWriteTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid write_timeout: %w", err)
	}

	cacheTTL, err := parseDurationOrDefault(v.CacheTTL, config.DefaultCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid cache_ttl: %w", err)
	}

	workers, err := parseIntOrDefault(v.BuildWorkers, config.DefaultBuildWorkers)
	if err != nil {
		return nil, fmt.Errorf("invalid workers: %w", err)
	}

	cfg := &config.Config{
		Theme: config.ThemeConfig{
			SourceMaps: v.SourceMaps,
			Manifest:   strings.TrimSpace(v.Manifest),
			ProjectDir: strings.TrimSpace(v.ProjectDir),
		},
		Server: config.ServerConfig{
			Address:      strings.TrimSpace(v.Address),
			Prefix:       strings.TrimSpace(v.Prefix),
			Compress:     v.Compress,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		Cache: config.CacheConfig{
			Backend:   v.CacheBackend,
			Directory: strings.TrimSpace(v.CacheDirectory),
			TTL:       cacheTTL,
		},
		Build: config.BuildConfig{
			OutputDir: strings.TrimSpace(v.BuildOutputDir),
			Workers:   workers,
		},
		Logging: config.LoggingConfig{
			Level:  v.LogLevel,
			Format: v.LogFormat,
		},
	}

	return cfg, nil
}

// categoryValues returns the editable values of one category in form order
func (v *ConfigValues) categoryValues(id string) []string {
	switch id {
	case "theme":
		return []string{v.Manifest, v.ProjectDir, strconv.FormatBool(v.SourceMaps)}
	case "server":
		return []string{v.Address, v.Prefix, strconv.FormatBool(v.Compress), v.ReadTimeout, v.WriteTimeout}
	case "cache":
		return []string{v.CacheBackend, v.CacheDirectory, v.CacheTTL}
	case "build":
		return []string{v.BuildOutputDir, v.BuildWorkers}
	case "logging":
		return []string{v.LogLevel, v.LogFormat}
	default:
		return nil
	}
}

// Changed reports whether category id differs from base
func (v *ConfigValues) Changed(id string, base *ConfigValues) bool {
	return !slices.Equal(v.categoryValues(id), base.categoryValues(id))
}

// Reset copies the values of category id from base
func (v *ConfigValues) Reset(id string, base *ConfigValues) {
	switch id {
	case "theme":
		v.Manifest, v.ProjectDir, v.SourceMaps = base.Manifest, base.ProjectDir, base.SourceMaps
	case "server":
		v.Address, v.Prefix, v.Compress = base.Address, base.Prefix, base.Compress
		v.ReadTimeout, v.WriteTimeout = base.ReadTimeout, base.WriteTimeout
	case "cache":
		v.CacheBackend, v.CacheDirectory, v.CacheTTL = base.CacheBackend, base.CacheDirectory, base.CacheTTL
	case "build":
		v.BuildOutputDir, v.BuildWorkers = base.BuildOutputDir, base.BuildWorkers
	case "logging":
		v.LogLevel, v.LogFormat = base.LogLevel, base.LogFormat
	}
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return ""
	}
	return d.String()
}

func parseDurationOrDefault(s string, defaultVal time.Duration) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultVal, nil
	}
	return time.ParseDuration(s)
}

func parseIntOrDefault(s string, defaultVal int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}
