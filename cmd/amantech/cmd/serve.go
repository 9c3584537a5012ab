package cmd

import (
	"context"
	"fmt"

	"github.com/nfrund/amantech/internal/app"
	"github.com/nfrund/amantech/internal/config"
	"github.com/nfrund/amantech/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		addr  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Long: `Run the web server until interrupted.

Configuration comes from the environment and an optional .env file
(APP_ADDR, SESSION_SECRET, CONTENT_PATH, LOG_FORMAT, ...). Flags override it.

Examples:
  amantech serve
  amantech serve --addr :3000
  CONTENT_PATH=site.yaml amantech serve --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			if cmd.Flags().Changed("watch") {
				cfg.ContentWatch = watch
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			ctx, stop := server.SignalContext(context.Background())
			defer stop()
			return app.Run(ctx, app.New(cfg, app.Options{Version: version}), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from APP_ADDR)")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload CONTENT_PATH when it changes")
	return cmd
}
