package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Loader loads and validates theme manifest files
type Loader struct{}

// NewLoader creates a new manifest loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a manifest file from the given path. Relative base
// directories are resolved against the directory of the file.
func (l *Loader) Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manifest path: %w", err)
	}

	return l.LoadFromBytes(data, filepath.Ext(path), filepath.Dir(absPath))
}

// LoadFromBytes parses manifest configuration from raw bytes. root is the
// directory relative base directories are joined onto.
func (l *Loader) LoadFromBytes(data []byte, ext, root string) (*Config, error) {
	ext = strings.ToLower(ext)

	switch ext {
	case ".yaml", ".yml", ".json":
		// JSON documents are valid YAML, and the YAML decoder keeps key order
	case ".jsonc":
		data = jsonc.ToJSON(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l.applyDefaults(&cfg, root)

	return &cfg, nil
}

func (l *Loader) applyDefaults(cfg *Config, root string) {
	if root != "" {
		cfg.Paths = cfg.Paths.Absolute(root)
	}
}
