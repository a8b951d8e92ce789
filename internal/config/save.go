package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/themebundle/internal/utils"
)

// Save validates a copy of cfg and writes cfg as YAML to path. Durations
// are written in time.Duration string form, which Load reads back.
func Save(cfg *Config, path string) error {
	check := *cfg
	if err := check.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := utils.WriteFile(utils.ExpandPath(path), data); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
