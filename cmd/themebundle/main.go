package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/quantmind-br/themebundle/internal/app"
	"github.com/quantmind-br/themebundle/internal/config"
	"github.com/quantmind-br/themebundle/internal/domain"
	"github.com/quantmind-br/themebundle/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(viper.GetViper()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// cli holds state shared by all commands
type cli struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	c := &cli{v: v}

	rootCmd := &cobra.Command{
		Use:   "themebundle",
		Short: "Combine and serve theme CSS and JavaScript",
		Long: `themebundle concatenates the CSS and JavaScript sources listed in a theme
manifest into single files, fingerprints them by path and modification time,
and serves them over HTTP with ETag and Last-Modified revalidation.

Source maps can be generated so browser devtools point back at the
original files.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default is ~/.themebundle/config.yaml)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Verbose output")
	flags.StringP("manifest", "m", config.DefaultManifest, "Theme manifest file")
	flags.String("project-dir", "", "Directory source map paths are relative to (default: manifest directory)")
	flags.Bool("sourcemaps", config.DefaultSourceMaps, "Generate source maps")
	flags.String("cache", config.DefaultCacheBackend, "Cache backend (memory or badger)")
	flags.String("cache-dir", "", "Badger cache directory")
	flags.String("log-level", config.DefaultLogLevel, "Log level (trace, debug, info, warn, error)")
	flags.String("log-format", config.DefaultLogFormat, "Log format (pretty or json)")

	_ = v.BindPFlag("theme.manifest", flags.Lookup("manifest"))
	_ = v.BindPFlag("theme.project_dir", flags.Lookup("project-dir"))
	_ = v.BindPFlag("theme.sourcemaps", flags.Lookup("sourcemaps"))
	_ = v.BindPFlag("cache.backend", flags.Lookup("cache"))
	_ = v.BindPFlag("cache.directory", flags.Lookup("cache-dir"))
	_ = v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("logging.format", flags.Lookup("log-format"))

	rootCmd.AddCommand(
		c.newServeCmd(),
		c.newBuildCmd(),
		c.newInspectCmd(),
		c.newDoctorCmd(),
		c.newConfigCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// loadConfig reads configuration with flag overrides applied
func (c *cli) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadWithViper(c.v, c.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newOrchestrator loads configuration and wires the application
func (c *cli) newOrchestrator(dryRun bool) (*app.Orchestrator, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	return app.NewOrchestrator(app.OrchestratorOptions{
		CommonOptions: domain.CommonOptions{
			Verbose: c.verbose,
			DryRun:  dryRun,
		},
		Config: cfg,
	})
}

// signalContext returns a context cancelled on SIGINT or SIGTERM
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}
