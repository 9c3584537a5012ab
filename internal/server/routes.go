package server

import (
	"github.com/nfrund/amantech/internal/components"
	"github.com/nfrund/amantech/internal/handlers"
	"github.com/nfrund/amantech/internal/live"
	"github.com/nfrund/amantech/internal/middleware"
	"github.com/nfrund/amantech/web"
	"github.com/nfrund/amantech/web/src/templates/pages"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter(s.Cfg.GetContactRateLimit())

	s.E.GET("/", s.homeHandler.HomeGet)
	s.E.GET(components.ProductsPath, s.homeHandler.ProductsGet)
	s.E.POST(pages.ContactPath, s.contactHandler.ContactPost, rateLimiter)
	s.E.GET(live.Path, s.liveHandler.Handle)
	s.E.GET("/health", handlers.HealthGet(s.deps.Version))

	s.E.StaticFS("/static", web.Static())
}
