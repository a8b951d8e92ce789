package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/quantmind-br/themebundle/internal/cache"
	"github.com/quantmind-br/themebundle/internal/config"
	"github.com/quantmind-br/themebundle/internal/domain"
	"github.com/quantmind-br/themebundle/internal/manifest"
	"github.com/quantmind-br/themebundle/internal/server"
	"github.com/quantmind-br/themebundle/internal/theme"
	"github.com/quantmind-br/themebundle/internal/utils"
)

// Orchestrator wires configuration, the theme manifest, the artifact store,
// the combiner and the HTTP server together
type Orchestrator struct {
	config     *config.Config
	store      domain.Store
	ownsStore  bool
	combiner   *theme.Combiner
	server     *server.Server
	logger     *utils.Logger
	projectDir string
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	domain.CommonOptions
	Config *config.Config
	// Logger overrides the logger built from Config.Logging
	Logger *utils.Logger
	// Store overrides the store built from Config.Cache. The caller keeps
	// ownership and must close it.
	Store domain.Store
}

// NewOrchestrator loads the manifest and builds every component
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(cfg, opts.Verbose)
	}

	manifestCfg, err := manifest.NewLoader().Load(cfg.Theme.Manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}

	projectDir, err := ProjectDir(cfg)
	if err != nil {
		return nil, err
	}

	sourceMaps := cfg.Theme.SourceMaps
	if manifestCfg.SourceMaps != nil {
		sourceMaps = *manifestCfg.SourceMaps
	}

	store := opts.Store
	ownsStore := false
	if store == nil {
		store, err = cache.New(cache.Options{
			Backend:   cfg.Cache.Backend,
			Directory: cfg.Cache.Directory,
			TTL:       cfg.Cache.TTL,
			Logger:    logger,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open cache: %w", err)
		}
		ownsStore = true
	}

	combiner, err := theme.NewCombiner(theme.Options{
		Paths:      manifestCfg.Paths,
		Files:      manifestCfg.Files,
		ProjectDir: projectDir,
		SourceMaps: sourceMaps,
		Store:      store,
	})
	if err != nil {
		if ownsStore {
			_ = store.Close()
		}
		return nil, err
	}

	srv := server.New(combiner, server.Options{
		Address:      cfg.Server.Address,
		Prefix:       cfg.Server.Prefix,
		Compress:     cfg.Server.Compress,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Logger:       logger,
	})

	logger.Debug().
		Str("manifest", cfg.Theme.Manifest).
		Str("project_dir", projectDir).
		Int("outputs", manifestCfg.Files.Len()).
		Int("namespaces", manifestCfg.Paths.Len()).
		Bool("sourcemaps", sourceMaps).
		Str("cache", cfg.Cache.Backend).
		Msg("Theme loaded")

	return &Orchestrator{
		config:     cfg,
		store:      store,
		ownsStore:  ownsStore,
		combiner:   combiner,
		server:     srv,
		logger:     logger,
		projectDir: projectDir,
	}, nil
}

// NewLogger builds the application logger from configuration
func NewLogger(cfg *config.Config, verbose bool) *utils.Logger {
	logLevel := config.DefaultLogLevel
	logFormat := config.DefaultLogFormat
	if cfg.Logging.Level != "" {
		logLevel = cfg.Logging.Level
	}
	if cfg.Logging.Format != "" {
		logFormat = cfg.Logging.Format
	}

	return utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  logFormat,
		Verbose: verbose,
	})
}

// ProjectDir returns the configured project directory, defaulting to the
// directory of the manifest file
func ProjectDir(cfg *config.Config) (string, error) {
	dir := cfg.Theme.ProjectDir
	if dir == "" {
		dir = filepath.Dir(cfg.Theme.Manifest)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project directory: %w", err)
	}
	return abs, nil
}

// Serve runs the HTTP server until ctx is cancelled
func (o *Orchestrator) Serve(ctx context.Context) error {
	o.logger.Info().
		Strs("outputs", o.combiner.Outputs()).
		Msg("Starting theme server")
	return o.server.ListenAndServe(ctx)
}

// Combiner returns the theme combiner
func (o *Orchestrator) Combiner() *theme.Combiner {
	return o.combiner
}

// Server returns the HTTP server
func (o *Orchestrator) Server() *server.Server {
	return o.server
}

// Close releases all resources held by the orchestrator
func (o *Orchestrator) Close() error {
	if o.ownsStore && o.store != nil {
		return o.store.Close()
	}
	return nil
}
