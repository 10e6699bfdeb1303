package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchboard/internal/server"
	"github.com/matzehuels/sketchboard/pkg/cache"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		cacheSize int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering service",
		Long: `Serve exposes the renderers, the text layout engine and the replay runner
over HTTP:

  GET  /healthz
  POST /render/{svg,png,json}   document JSON in, artifact out
  POST /text/layout             layout request JSON in, lines out
  POST /replay                  YAML script in, result JSON out
  GET  /live                    websocket session driving one controller

Rendered artifacts are kept in an in-memory LRU cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.cfg().Server.Addr
			}
			srv := server.New(
				server.WithLogger(c.Logger),
				server.WithConfig(c.cfg()),
				server.WithCache(cache.NewMemoryCache(cacheSize)),
			)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().IntVar(&cacheSize, "cache-size", cache.DefaultMemoryEntries, "number of rendered artifacts kept in memory")

	return cmd
}
