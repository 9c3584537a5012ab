// Package app wires the application services together in a samber/do
// injector and runs them.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/amantech/internal/config"
	"github.com/nfrund/amantech/internal/content"
	"github.com/nfrund/amantech/internal/email"
	"github.com/nfrund/amantech/internal/hub"
	"github.com/nfrund/amantech/internal/inquiry"
	"github.com/nfrund/amantech/internal/logging"
	"github.com/nfrund/amantech/internal/pubsub"
	"github.com/nfrund/amantech/internal/rendering"
	"github.com/nfrund/amantech/internal/server"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// Recorder sources, carried as message metadata.
const (
	SourceForm = "http"
	SourceLive = "live"
)

// Options are the runtime settings that do not come from the environment.
type Options struct {
	Version string
	// Fs is where the content override is read from. Nil means the OS.
	Fs afero.Fs
}

// New builds the injector. Services are created lazily on first use.
func New(cfg *config.Config, opts Options) *do.RootScope {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue[config.Provider](injector, cfg)
	do.ProvideValue(injector, opts.Fs)

	do.Provide(injector, func(i do.Injector) (*slog.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logging.New(cfg.GetLogFormat(), cfg.GetLogLevel()), nil
	})
	do.Provide(injector, func(i do.Injector) (*content.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.GetContentPath() == "" {
			return content.NewStaticStore(content.Default()), nil
		}
		return content.NewStore(do.MustInvoke[afero.Fs](i), cfg.GetContentPath())
	})
	do.Provide(injector, func(i do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(pubsub.WithLogger(do.MustInvoke[*slog.Logger](i))), nil
	})
	do.Provide(injector, func(i do.Injector) (*hub.Hub, error) {
		return hub.NewHub(), nil
	})
	do.Provide(injector, func(i do.Injector) (*rendering.UniversalRenderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})
	do.Provide(injector, func(i do.Injector) (*inquiry.LogSubscriber, error) {
		return inquiry.NewLogSubscriber(do.MustInvoke[*slog.Logger](i)), nil
	})
	// A nil sender means inquiries are not mailed.
	do.Provide(injector, func(i do.Injector) (email.Sender, error) {
		return email.New(do.MustInvoke[config.Provider](i))
	})
	do.Provide(injector, func(i do.Injector) (*server.Server, error) {
		bus := do.MustInvoke[*pubsub.WatermillBridge](i)
		store, err := do.Invoke[*content.Store](i)
		if err != nil {
			return nil, err
		}
		s := server.New(server.Deps{
			Config:       do.MustInvoke[config.Provider](i),
			Store:        store,
			Renderer:     do.MustInvoke[*rendering.UniversalRenderer](i),
			FormRecorder: inquiry.NewPubSubRecorder(bus, SourceForm),
			LiveRecorder: inquiry.NewPubSubRecorder(bus, SourceLive),
			Hub:          do.MustInvoke[*hub.Hub](i),
			Version:      opts.Version,
		})
		s.RegisterRoutes()
		return s, nil
	})

	return injector
}

// Run starts the inquiry subscribers, the live page hub, the content
// watcher when enabled, and the HTTP server, and blocks until ctx is canceled. The injector is
// shut down on return.
func Run(ctx context.Context, injector *do.RootScope, addr string) error {
	defer injector.Shutdown()

	cfg := do.MustInvoke[*config.Config](injector)
	logger := do.MustInvoke[*slog.Logger](injector)

	srv, err := do.Invoke[*server.Server](injector)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	bus := do.MustInvoke[*pubsub.WatermillBridge](injector)
	if err := do.MustInvoke[*inquiry.LogSubscriber](injector).Start(ctx, bus); err != nil {
		return fmt.Errorf("failed to start inquiry subscriber: %w", err)
	}
	sender, err := do.Invoke[email.Sender](injector)
	if err != nil {
		return fmt.Errorf("failed to build email sender: %w", err)
	}
	if sender != nil {
		if err := inquiry.NewMailSubscriber(sender, cfg.GetEmailTo()).Start(ctx, bus); err != nil {
			return fmt.Errorf("failed to start inquiry mailer: %w", err)
		}
	}

	go do.MustInvoke[*hub.Hub](injector).Run(ctx)

	if cfg.GetContentWatch() {
		store := do.MustInvoke[*content.Store](injector)
		if err := store.Watch(ctx); err != nil {
			logger.Warn("Content hot reload disabled", "error", err)
		}
	}

	if addr == "" {
		addr = cfg.GetAddr()
	}
	return srv.Start(ctx, addr)
}
