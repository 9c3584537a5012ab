package live_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/amantech/internal/content"
	"github.com/nfrund/amantech/internal/domain"
	"github.com/nfrund/amantech/internal/hub"
	"github.com/nfrund/amantech/internal/live"
	"github.com/nfrund/amantech/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRecorder struct {
	mu sync.Mutex
	n  int
}

func (r *countingRecorder) Record(context.Context, domain.Inquiry) {
	r.mu.Lock()
	r.n++
	r.mu.Unlock()
}

func newServer(t *testing.T, rec *countingRecorder) string {
	t.Helper()
	e := echo.New()
	h := live.NewHandler(content.NewStaticStore(content.Default()), rendering.NewUniversalRenderer(), rec)
	e.GET(live.Path, h.Handle)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http") + live.Path
}

func dialURL(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func dial(t *testing.T, rec *countingRecorder) *websocket.Conn {
	t.Helper()
	return dialURL(t, newServer(t, rec))
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg string) string {
	t.Helper()
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(msg)))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	return string(data)
}

func TestHandler_MenuAndScroll(t *testing.T) {
	conn := dial(t, &countingRecorder{})

	out := roundTrip(t, conn, `{"HEADERS":{"HX-Request":"true","HX-Trigger":"menuToggle"}}`)
	assert.Contains(t, out, `hx-swap-oob="true"`)
	assert.Contains(t, out, `data-state="open"`)

	out = roundTrip(t, conn, `{"HEADERS":{"HX-Trigger":"nav-link-history"}}`)
	assert.Contains(t, out, `data-state="closed"`)
	assert.Contains(t, out, `data-target="history"`)
}

func TestHandler_IgnoresJunkAndKeepsSession(t *testing.T) {
	conn := dial(t, &countingRecorder{})

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`not json`)))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"HEADERS":{"HX-Trigger":"unknown"}}`)))

	out := roundTrip(t, conn, `{"HEADERS":{"HX-Trigger":"hero-learn-more"}}`)
	assert.Contains(t, out, `data-target="about"`)
}

func TestHandler_ContactSubmission(t *testing.T) {
	rec := &countingRecorder{}
	conn := dial(t, rec)

	out := roundTrip(t, conn, `{"name":"","email":"","message":"","HEADERS":{"HX-Trigger":"contact-form"}}`)
	assert.Contains(t, out, domain.MsgInquiryRejected)

	out = roundTrip(t, conn, `{"name":"Ana","email":"ana@example.com","company":"","phone":"","message":"Hi","HEADERS":{"HX-Trigger":"contact-form"}}`)
	assert.Contains(t, out, domain.MsgInquiryAccepted)
	assert.Contains(t, out, `id="contact-form"`)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, 1, rec.n)
}

func TestHandler_SessionsAreIndependent(t *testing.T) {
	url := newServer(t, &countingRecorder{})
	a := dialURL(t, url)
	b := dialURL(t, url)

	// Opening the menu on one page leaves the other page's menu closed.
	outA := roundTrip(t, a, `{"HEADERS":{"HX-Trigger":"menuToggle"}}`)
	outB := roundTrip(t, b, `{"HEADERS":{"HX-Trigger":"menuToggle"}}`)
	assert.Contains(t, outA, `data-state="open"`)
	assert.Contains(t, outB, `data-state="open"`)

	outA = roundTrip(t, a, `{"HEADERS":{"HX-Trigger":"menuToggle"}}`)
	assert.Contains(t, outA, `data-state="closed"`)
}

func TestHandler_BroadcastReload(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := hub.NewHub()
	go h.Run(ctx)

	handler := live.NewHandler(content.NewStaticStore(content.Default()), rendering.NewUniversalRenderer(),
		&countingRecorder{}, live.WithHub(h))
	e := echo.New()
	e.GET(live.Path, handler.Handle)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + live.Path

	a := dialURL(t, url)
	b := dialURL(t, url)
	// A reply proves each session is running and subscribed.
	roundTrip(t, a, `{"HEADERS":{"HX-Trigger":"menuToggle"}}`)
	roundTrip(t, b, `{"HEADERS":{"HX-Trigger":"menuToggle"}}`)

	require.NoError(t, handler.BroadcastReload(ctx))

	for _, conn := range []*websocket.Conn{a, b} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Contains(t, string(data), `id="redirect-signal"`)
		assert.Contains(t, string(data), `data-location="/"`)
	}
}

func TestHandler_BroadcastReloadWithoutHub(t *testing.T) {
	handler := live.NewHandler(content.NewStaticStore(content.Default()), rendering.NewUniversalRenderer(), &countingRecorder{})
	assert.NoError(t, handler.BroadcastReload(context.Background()))
}
