package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/quantmind-br/themebundle/internal/config"
	"github.com/quantmind-br/themebundle/internal/tui"
	"github.com/quantmind-br/themebundle/internal/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errConfigExists = errors.New("config file already exists (use --force to overwrite)")

func (c *cli) newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or edit the configuration file",
	}

	configCmd.AddCommand(
		c.newConfigPathCmd(),
		c.newConfigShowCmd(),
		c.newConfigInitCmd(),
		c.newConfigEditCmd(),
	)
	return configCmd
}

// configPath is the file config commands write to
func (c *cli) configPath() string {
	if c.cfgFile != "" {
		return c.cfgFile
	}
	return config.ConfigFilePath()
}

func (c *cli) newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), c.configPath())
		},
	}
}

func (c *cli) newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  "Prints the configuration after merging the config file, THEMEBUNDLE_* environment variables and flags.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func (c *cli) newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath()
			if _, err := os.Stat(utils.ExpandPath(path)); err == nil && !force {
				return fmt.Errorf("%w: %s", errConfigExists, path)
			}
			if err := config.Save(config.Default(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func (c *cli) newConfigEditCmd() *cobra.Command {
	var accessible bool

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the configuration interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			path := c.configPath()
			return tui.Run(tui.Options{
				Config:     cfg,
				Path:       path,
				Accessible: accessible,
				SaveFunc: func(edited *config.Config) error {
					return config.Save(edited, path)
				},
			})
		},
	}

	cmd.Flags().BoolVar(&accessible, "accessible", false, "Use plain prompts suitable for screen readers")
	return cmd
}
