package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides (THEMEBUNDLE_*)
const EnvPrefix = "THEMEBUNDLE"

// Load loads configuration from file, environment, and defaults.
// Uses the global viper instance to access CLI flag bindings. An empty
// configFile searches the config directory and the working directory.
func Load(configFile string) (*Config, error) {
	return LoadWithViper(viper.GetViper(), configFile)
}

// LoadWithViper loads configuration through v
func LoadWithViper(v *viper.Viper, configFile string) (*Config, error) {
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")

		// Read config file (ignore if not found)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("theme.sourcemaps", DefaultSourceMaps)
	v.SetDefault("theme.manifest", DefaultManifest)
	v.SetDefault("theme.project_dir", "")

	v.SetDefault("server.address", DefaultAddress)
	v.SetDefault("server.prefix", DefaultPrefix)
	v.SetDefault("server.compress", DefaultCompress)
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
	v.SetDefault("server.write_timeout", DefaultWriteTimeout)

	v.SetDefault("cache.backend", DefaultCacheBackend)
	v.SetDefault("cache.directory", CacheDir())
	v.SetDefault("cache.ttl", DefaultCacheTTL)

	v.SetDefault("build.output_dir", DefaultBuildOutputDir)
	v.SetDefault("build.workers", DefaultBuildWorkers)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
