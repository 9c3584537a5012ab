package live

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/amantech/internal/components"
	"github.com/nfrund/amantech/internal/content"
	"github.com/nfrund/amantech/internal/hub"
	"github.com/nfrund/amantech/internal/rendering"
	"github.com/nfrund/amantech/web/src/templates/pages"
	"github.com/nfrund/amantech/web/src/templates/partials"
)

const (
	// Path is the websocket endpoint pages connect to.
	Path = "/ws/page"

	readLimit = 64 << 10
	writeWait = 10 * time.Second
)

// Handler accepts live page connections.
type Handler struct {
	store    *content.Store
	renderer *rendering.UniversalRenderer
	recorder components.Recorder
	now      func() time.Time
	origins  []string
	hub      *hub.Hub
	logger   *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithClock overrides the clock used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// WithOriginPatterns allows cross-origin connections from the given host
// patterns. Same-origin connections are always accepted.
func WithOriginPatterns(patterns ...string) Option {
	return func(h *Handler) { h.origins = patterns }
}

// WithHub subscribes every connection to h, so fragments broadcast on it
// reach all open pages.
func WithHub(h *hub.Hub) Option {
	return func(handler *Handler) { handler.hub = h }
}

// NewHandler creates a handler. recorder receives inquiries accepted over
// live sessions.
func NewHandler(store *content.Store, renderer *rendering.UniversalRenderer, recorder components.Recorder, opts ...Option) *Handler {
	h := &Handler{
		store:    store,
		renderer: renderer,
		recorder: recorder,
		now:      time.Now,
		logger:   slog.Default().With("component", "live"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle is the echo handler for Path.
func (h *Handler) Handle(c echo.Context) error {
	h.ServeHTTP(c.Response(), c.Request())
	return nil
}

// ServeHTTP upgrades the request and runs the session until the client goes
// away or the request context ends.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: h.origins})
	if err != nil {
		h.logger.Error("Failed to upgrade connection to WebSocket", "error", err)
		return
	}
	conn.SetReadLimit(readLimit)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	session, err := h.newSession(ctx)
	if err != nil {
		h.logger.Error("Failed to start live session", "error", err)
		conn.Close(websocket.StatusInternalError, "session unavailable")
		return
	}
	defer session.Close()

	log := h.logger.With("session_id", session.ID.String())
	log.Debug("Live session started")

	if h.hub != nil {
		if sub := h.hub.Subscribe(); sub != nil {
			defer h.hub.Unsubscribe(sub)
			go h.forward(ctx, conn, sub, log)
		}
	}

	err = h.run(ctx, conn, session, log)
	switch status := websocket.CloseStatus(err); {
	case status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway:
		log.Debug("Live session closed by client")
	case errors.Is(err, context.Canceled):
		log.Debug("Live session ended")
	default:
		log.Warn("Live session failed", "error", err)
	}
	conn.Close(websocket.StatusNormalClosure, "")
}

// forward writes broadcast fragments to conn until sub is closed or ctx
// ends.
func (h *Handler) forward(ctx context.Context, conn *websocket.Conn, sub *hub.Subscriber, log *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-sub.Send:
			if !ok {
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := conn.Write(writeCtx, websocket.MessageText, payload)
			cancel()
			if err != nil {
				log.Debug("Failed to forward broadcast", "error", err)
				return
			}
		}
	}
}

// BroadcastReload tells every open page to load the site again. It is a
// no-op without a hub.
func (h *Handler) BroadcastReload(ctx context.Context) error {
	if h.hub == nil {
		return nil
	}
	payload, err := h.renderer.RenderFragments(ctx, partials.RedirectSignal("/"))
	if err != nil {
		return err
	}
	if !h.hub.Broadcast(payload) {
		return errors.New("live hub is stopped")
	}
	return nil
}

func (h *Handler) newSession(ctx context.Context) (*Session, error) {
	cat := h.store.Catalog()
	page, err := h.renderer.RenderComponent(ctx, pages.Home(pages.HomeProps{
		Catalog: cat,
		Year:    h.now().Year(),
		LiveURL: Path,
	}))
	if err != nil {
		return nil, err
	}
	return NewSession(page, cat, h.recorder, h.logger)
}

func (h *Handler) run(ctx context.Context, conn *websocket.Conn, session *Session, log *slog.Logger) error {
	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}
		if typ != websocket.MessageText {
			continue
		}

		in, err := ParseInbound(data)
		if err != nil {
			log.Debug("Ignoring live message", "error", err)
			continue
		}

		fragments := session.Handle(ctx, in)
		if len(fragments) == 0 {
			continue
		}
		payload, err := h.renderer.RenderFragments(ctx, fragments...)
		if err != nil {
			log.Error("Failed to render live fragments", "trigger", in.Trigger, "error", err)
			continue
		}

		writeCtx, cancel := context.WithTimeout(ctx, writeWait)
		err = conn.Write(writeCtx, websocket.MessageText, payload)
		cancel()
		if err != nil {
			return err
		}
	}
}
