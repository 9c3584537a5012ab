package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureDefault(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLogger_InjectsRequestLogger(t *testing.T) {
	buf := captureDefault(t)

	e := echo.New()
	e.Use(echomw.RequestID(), Logger)
	e.GET("/", func(c echo.Context) error {
		FromContext(c.Request().Context()).Info("inside handler")
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	reqID := rec.Header().Get(echo.HeaderXRequestID)
	require.NotEmpty(t, reqID)
	out := buf.String()
	assert.Contains(t, out, "inside handler")
	assert.Contains(t, out, "request_id="+reqID)
	assert.Contains(t, out, "Request handled")
	assert.Contains(t, out, "status=200")
}

func TestLogger_ErrorStatus(t *testing.T) {
	buf := captureDefault(t)

	e := echo.New()
	e.Use(Logger)
	e.GET("/boom", func(c echo.Context) error { return errors.New("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "status=500")
}

func TestFromContext_Default(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Same(t, slog.Default(), FromContext(req.Context()))
}
