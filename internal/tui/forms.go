package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/quantmind-br/themebundle/internal/config"
)

func CreateThemeForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("manifest").
				Title("Manifest").
				Description("Theme manifest listing namespaces and outputs").
				Value(&values.Manifest).
				Placeholder(config.DefaultManifest).
				Validate(ValidateRequired),

			huh.NewInput().
				Key("project_dir").
				Title("Project Directory").
				Description("Source map paths are relative to this directory (empty: manifest directory)").
				Value(&values.ProjectDir),

			huh.NewConfirm().
				Key("sourcemaps").
				Title("Source Maps").
				Description("Generate source maps and append sourceMappingURL comments").
				Value(&values.SourceMaps),
		),
	).WithTheme(formTheme(false))
}

func CreateServerForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("address").
				Title("Listen Address").
				Description("host:port the HTTP server binds to").
				Value(&values.Address).
				Placeholder(config.DefaultAddress).
				Validate(ValidateAddress),

			huh.NewInput().
				Key("prefix").
				Title("URL Prefix").
				Description("Path combined files and source maps are served under").
				Value(&values.Prefix).
				Placeholder(config.DefaultPrefix).
				Validate(ValidatePrefix),

			huh.NewConfirm().
				Key("compress").
				Title("Compress Responses").
				Description("Gzip responses for clients that accept it").
				Value(&values.Compress),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("read_timeout").
				Title("Read Timeout").
				Description("Maximum duration for reading a request (e.g., 15s)").
				Value(&values.ReadTimeout).
				Placeholder(config.DefaultReadTimeout.String()).
				Validate(ValidateDuration),

			huh.NewInput().
				Key("write_timeout").
				Title("Write Timeout").
				Description("Maximum duration for writing a response (e.g., 30s)").
				Value(&values.WriteTimeout).
				Placeholder(config.DefaultWriteTimeout.String()).
				Validate(ValidateDuration),
		),
	).WithTheme(formTheme(false))
}

func CreateCacheForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("backend").
				Title("Cache Backend").
				Description("Where combined files are stored between requests").
				Options(
					huh.NewOption("Memory (per process)", config.BackendMemory),
					huh.NewOption("Badger (on disk, shared across restarts)", config.BackendBadger),
				).
				Value(&values.CacheBackend).
				Validate(ValidateBackend),

			huh.NewInput().
				Key("directory").
				Title("Cache Directory").
				Description("Directory for the badger backend").
				Value(&values.CacheDirectory).
				Placeholder("~/.themebundle/cache"),

			huh.NewInput().
				Key("ttl").
				Title("Cache TTL").
				Description("How long badger keeps entries (empty: forever)").
				Value(&values.CacheTTL).
				Placeholder("24h").
				Validate(ValidateDuration),
		),
	).WithTheme(formTheme(false))
}

func CreateBuildForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("output_dir").
				Title("Output Directory").
				Description("Where build writes combined files").
				Value(&values.BuildOutputDir).
				Placeholder(config.DefaultBuildOutputDir),

			huh.NewInput().
				Key("workers").
				Title("Workers").
				Description("Outputs combined concurrently (1-64)").
				Value(&values.BuildWorkers).
				Placeholder("4").
				Validate(ValidateIntRange(1, 64)),
		),
	).WithTheme(formTheme(false))
}

func CreateLoggingForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("level").
				Title("Log Level").
				Description("Minimum log level to display").
				Options(
					huh.NewOption("Trace", "trace"),
					huh.NewOption("Debug", "debug"),
					huh.NewOption("Info", "info"),
					huh.NewOption("Warn", "warn"),
					huh.NewOption("Error", "error"),
				).
				Value(&values.LogLevel).
				Validate(ValidateLogLevel),

			huh.NewSelect[string]().
				Key("format").
				Title("Log Format").
				Description("Output format for logs").
				Options(
					huh.NewOption("Pretty (human-readable)", "pretty"),
					huh.NewOption("JSON (structured)", "json"),
				).
				Value(&values.LogFormat).
				Validate(ValidateLogFormat),
		),
	).WithTheme(formTheme(false))
}

func GetFormForCategory(category string, values *ConfigValues) *huh.Form {
	switch category {
	case "theme":
		return CreateThemeForm(values)
	case "server":
		return CreateServerForm(values)
	case "cache":
		return CreateCacheForm(values)
	case "build":
		return CreateBuildForm(values)
	case "logging":
		return CreateLoggingForm(values)
	default:
		return nil
	}
}
