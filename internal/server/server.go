package server

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/amantech/internal/components"
	"github.com/nfrund/amantech/internal/config"
	"github.com/nfrund/amantech/internal/content"
	"github.com/nfrund/amantech/internal/handlers"
	"github.com/nfrund/amantech/internal/hub"
	"github.com/nfrund/amantech/internal/live"
	appmiddleware "github.com/nfrund/amantech/internal/middleware"
	"github.com/nfrund/amantech/internal/rendering"
)

// Deps are the services the server is built from.
type Deps struct {
	Config   config.Provider
	Store    *content.Store
	Renderer *rendering.UniversalRenderer
	// FormRecorder receives inquiries posted through the form fallback,
	// LiveRecorder those submitted over live sessions.
	FormRecorder components.Recorder
	LiveRecorder components.Recorder
	// Hub, when set, lets a content reload reach every open live page.
	Hub     *hub.Hub
	Version string
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E    *echo.Echo
	Cfg  config.Provider
	deps Deps

	homeHandler    *handlers.HomeHandler
	contactHandler *handlers.ContactHandler
	liveHandler    *live.Handler
}

// New creates a new Server instance with middleware configured. Routes are
// added by RegisterRoutes.
func New(deps Deps) *Server {
	cfg := deps.Config

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = deps.Renderer
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.GetEnv() == "production",
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	var liveOpts []live.Option
	if u, err := url.Parse(cfg.GetAppBaseURL()); err == nil && u.Host != "" {
		liveOpts = append(liveOpts, live.WithOriginPatterns(u.Host))
	}
	if deps.Hub != nil {
		liveOpts = append(liveOpts, live.WithHub(deps.Hub))
	}
	liveHandler := live.NewHandler(deps.Store, deps.Renderer, deps.LiveRecorder, liveOpts...)
	if deps.Hub != nil {
		deps.Store.OnReload(func(*content.Catalog) {
			if err := liveHandler.BroadcastReload(context.Background()); err != nil {
				slog.Warn("Failed to notify live pages of content reload", "error", err)
			}
		})
	}

	home := handlers.NewHomeHandler(deps.Store, live.Path)
	return &Server{
		E:              e,
		Cfg:            cfg,
		deps:           deps,
		homeHandler:    home,
		contactHandler: handlers.NewContactHandler(deps.FormRecorder, home),
		liveHandler:    liveHandler,
	}
}
