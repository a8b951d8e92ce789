package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/quantmind-br/themebundle/internal/app"
	"github.com/spf13/cobra"
)

func (c *cli) newInspectCmd() *cobra.Command {
	var showMappings bool

	cmd := &cobra.Command{
		Use:   "inspect NAME",
		Short: "Show how a theme file is combined",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := c.newOrchestrator(false)
			if err != nil {
				return err
			}
			defer o.Close()

			in, err := o.Inspect(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printInspection(cmd.OutOrStdout(), in, showMappings)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showMappings, "mappings", false, "Print decoded source map segments")
	return cmd
}

func printInspection(w io.Writer, in *app.Inspection, showMappings bool) {
	fmt.Fprintf(w, "Name:          %s\n", in.Name)
	fmt.Fprintf(w, "URL:           %s\n", in.URL)
	fmt.Fprintf(w, "Fingerprint:   %s\n", in.Fingerprint)
	fmt.Fprintf(w, "Content-Type:  %s\n", in.ContentType)
	fmt.Fprintf(w, "Last-Modified: %s\n", in.LastModified.Format(time.RFC1123))
	fmt.Fprintf(w, "Size:          %s\n", humanize.Bytes(uint64(in.Size)))
	fmt.Fprintf(w, "Sources:\n")
	for i, s := range in.Sources {
		modified := time.Unix(in.ModTimes[i], 0)
		fmt.Fprintf(w, "  %d. %s\n     %s (modified %s)\n", s.Index+1, s.Reference, s.Path, humanize.Time(modified))
	}

	printCacheStats(w, in.CacheBackend, in.CacheStats)

	if !in.SourceMaps || in.SourceMap == nil {
		fmt.Fprintf(w, "Source map:    disabled\n")
		return
	}
	fmt.Fprintf(w, "Source map:    %s (%d groups)\n", in.MapURL, len(in.Mappings))
	for i, src := range in.SourceMap.Sources {
		fmt.Fprintf(w, "  [%d] %s\n", i, src)
	}
	if showMappings {
		for line, group := range in.Mappings {
			fmt.Fprintf(w, "  %4d: %v\n", line+1, group)
		}
	}
}

func printCacheStats(w io.Writer, backend string, stats map[string]interface{}) {
	entries, _ := stats["entries"].(int64)
	line := fmt.Sprintf("%s, %d entries", backend, entries)
	lsm, okLSM := stats["lsm_size"].(int64)
	vlog, okVlog := stats["vlog_size"].(int64)
	if okLSM && okVlog {
		line += fmt.Sprintf(", %s on disk", humanize.Bytes(uint64(lsm+vlog)))
	}
	fmt.Fprintf(w, "Cache:         %s\n", line)
}
