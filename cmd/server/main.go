package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/amantech/internal/app"
	"github.com/nfrund/amantech/internal/config"
	"github.com/nfrund/amantech/internal/server"
)

// Version can be set at build time.
// Example: go build -ldflags "-X 'main.Version=1.2.0'"
var Version = "dev"

func main() {
	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := server.SignalContext(context.Background())
	defer stop()

	if err := app.Run(ctx, app.New(cfg, app.Options{Version: Version}), ""); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
