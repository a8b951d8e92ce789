package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/quantmind-br/themebundle/internal/app"
	"github.com/spf13/cobra"
)

var errChecksFailed = errors.New("some checks failed")

func (c *cli) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the theme configuration",
		Long:  "Verifies that the manifest loads, every output resolves to readable sources and the cache is usable.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := c.loadConfig()
			if err != nil {
				fmt.Fprintf(out, "  Config file: FAILED (%v)\n", err)
				return errChecksFailed
			}
			fmt.Fprintf(out, "  Config file: OK\n")

			checks := app.Doctor(cfg)
			printChecks(out, checks)

			fmt.Fprintln(out)
			if !app.AllPassed(checks) {
				fmt.Fprintln(out, "Some checks failed. Please resolve the issues above.")
				return errChecksFailed
			}
			fmt.Fprintln(out, "All checks passed!")
			return nil
		},
	}
}

func printChecks(w io.Writer, checks []app.Check) {
	for _, ch := range checks {
		if ch.Detail != "" {
			fmt.Fprintf(w, "  %s: %s (%s)\n", ch.Name, ch.Status, ch.Detail)
		} else {
			fmt.Fprintf(w, "  %s: %s\n", ch.Name, ch.Status)
		}
	}
}
