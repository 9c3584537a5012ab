package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/amantech/internal/content"
	"github.com/nfrund/amantech/internal/domain"
	"github.com/nfrund/amantech/internal/view"
	"github.com/nfrund/amantech/web/src/templates/pages"
)

// HomeHandler renders the landing page and the products page.
type HomeHandler struct {
	store   *content.Store
	liveURL string
	now     func() time.Time
}

// NewHomeHandler creates a HomeHandler. liveURL is the websocket endpoint
// the home page connects to; empty disables the live session.
func NewHomeHandler(store *content.Store, liveURL string) *HomeHandler {
	return &HomeHandler{store: store, liveURL: liveURL, now: time.Now}
}

// HomeGet handles the GET request for the home page. Flash notices left by
// the contact fallback are shown once.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	return h.renderHome(c, http.StatusOK, domain.FormData{}, view.GetFlashData(c))
}

func (h *HomeHandler) renderHome(c echo.Context, status int, form domain.FormData, notices view.FlashData) error {
	page := pages.Home(pages.HomeProps{
		Catalog: h.store.Catalog(),
		Form:    form,
		Flash:   notices,
		Year:    h.now().Year(),
		LiveURL: h.liveURL,
	})
	return c.Render(status, "", page)
}

// ProductsGet handles the GET request for the full product catalog.
func (h *HomeHandler) ProductsGet(c echo.Context) error {
	return c.Render(http.StatusOK, "", pages.ProductsPage(h.store.Catalog(), h.now().Year()))
}
