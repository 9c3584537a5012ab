// Package rendering writes templ components and gomponents nodes to HTTP
// responses, byte slices and websocket frames.
package rendering

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer renders any supported component. Components are either a
// templ.Component or anything with Render(io.Writer) error, such as a
// gomponents.Node.
type Renderer interface {
	// RenderComponent renders to bytes; used for fragments and websocket frames.
	RenderComponent(ctx context.Context, component any) ([]byte, error)
	// RenderPage streams a full page to the response.
	RenderPage(c echo.Context, status int, component any) error
}

// UniversalRenderer is the Renderer used by every handler.
type UniversalRenderer struct{}

var (
	_ Renderer      = (*UniversalRenderer)(nil)
	_ echo.Renderer = (*UniversalRenderer)(nil)
)

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

type nodeRenderer interface {
	Render(w io.Writer) error
}

// ErrUnsupportedComponent is wrapped when a value cannot be rendered.
var ErrUnsupportedComponent = errors.New("unsupported component type")

func (r *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case nodeRenderer:
		return c.Render(w)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedComponent, component)
	}
}

// RenderComponent implements Renderer.
func (r *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderFragments renders several components into one payload, in order.
// htmx applies every out-of-band element of a websocket frame.
func (r *UniversalRenderer) RenderFragments(ctx context.Context, components ...any) ([]byte, error) {
	var buf bytes.Buffer
	for _, component := range components {
		if err := r.render(ctx, component, &buf); err != nil {
			return nil, fmt.Errorf("failed to render fragment: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// RenderPage implements Renderer. The page is rendered into a buffer first
// so a render failure can still become a proper error response.
func (r *UniversalRenderer) RenderPage(c echo.Context, status int, component any) error {
	body, err := r.RenderComponent(c.Request().Context(), component)
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "Failed to render page", "path", c.Path(), "error", err)
		return err
	}
	return c.HTMLBlob(status, body)
}

// Render implements echo.Renderer for c.Render(status, name, component);
// the component travels in data and name is ignored.
func (r *UniversalRenderer) Render(w io.Writer, _ string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return r.render(c.Request().Context(), data, w)
}
