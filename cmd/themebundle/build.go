package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/quantmind-br/themebundle/internal/app"
	"github.com/quantmind-br/themebundle/internal/domain"
	"github.com/spf13/cobra"
)

func (c *cli) newBuildCmd() *cobra.Command {
	var (
		dryRun     bool
		noProgress bool
		force      bool
		prune      bool
	)

	cmd := &cobra.Command{
		Use:   "build [output...]",
		Short: "Write combined theme files to a directory",
		Long: `Combines every configured output (or only the named ones) and writes it
to the output directory together with its source map.

Outputs whose fingerprint matches the previous build are left alone unless
--force is given. --prune deletes files of outputs removed from the manifest.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := c.newOrchestrator(dryRun)
			if err != nil {
				return err
			}
			defer o.Close()

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			results, buildErr := o.Build(ctx, app.BuildOptions{
				CommonOptions: domain.CommonOptions{Verbose: c.verbose, DryRun: dryRun},
				Outputs:       args,
				ShowProgress:  !noProgress,
				Force:         force,
				Prune:         prune,
			})
			printBuildResults(cmd.OutOrStdout(), results, dryRun)
			return buildErr
		},
	}

	flags := cmd.Flags()
	flags.StringP("output", "o", "./public/theme", "Output directory")
	flags.IntP("workers", "j", 4, "Number of outputs combined in parallel")
	flags.BoolVar(&dryRun, "dry-run", false, "Combine without writing files")
	flags.BoolVar(&noProgress, "no-progress", false, "Hide the progress bar")
	flags.BoolVarP(&force, "force", "f", false, "Rewrite outputs even when unchanged")
	flags.BoolVar(&prune, "prune", false, "Remove outputs no longer in the manifest")

	_ = c.v.BindPFlag("build.output_dir", flags.Lookup("output"))
	_ = c.v.BindPFlag("build.workers", flags.Lookup("workers"))

	return cmd
}

func printBuildResults(w io.Writer, results []app.BuildResult, dryRun bool) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "FAILED\t%s\t%v\n", r.Name, r.Err)
			continue
		}
		if r.Pruned {
			fmt.Fprintf(tw, "PRUNED\t%s\n", r.Path)
			continue
		}
		status := "OK"
		switch {
		case dryRun:
			status = "DRY-RUN"
		case r.Skipped:
			status = "UNCHANGED"
		}
		line := fmt.Sprintf("%s\t%s\t%s\t%.12s", status, r.Path, humanize.Bytes(uint64(r.Size)), r.Fingerprint)
		if r.MapPath != "" {
			line += fmt.Sprintf("\t+ map %s", humanize.Bytes(uint64(r.MapSize)))
		}
		fmt.Fprintln(tw, line)
	}
	_ = tw.Flush()
}
