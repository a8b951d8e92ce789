package main

import (
	"github.com/spf13/cobra"
)

func (c *cli) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve combined theme files over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := c.newOrchestrator(false)
			if err != nil {
				return err
			}
			defer o.Close()

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			return o.Serve(ctx)
		},
	}

	flags := cmd.Flags()
	flags.StringP("addr", "a", ":8080", "Listen address")
	flags.String("prefix", "/_/theme", "URL prefix for theme files")
	flags.Bool("compress", true, "Gzip responses")
	flags.Duration("read-timeout", 0, "HTTP read timeout (0 uses the default)")
	flags.Duration("write-timeout", 0, "HTTP write timeout (0 uses the default)")

	_ = c.v.BindPFlag("server.address", flags.Lookup("addr"))
	_ = c.v.BindPFlag("server.prefix", flags.Lookup("prefix"))
	_ = c.v.BindPFlag("server.compress", flags.Lookup("compress"))
	_ = c.v.BindPFlag("server.read_timeout", flags.Lookup("read-timeout"))
	_ = c.v.BindPFlag("server.write_timeout", flags.Lookup("write-timeout"))

	return cmd
}
