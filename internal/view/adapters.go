package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// Templ embeds a templ component in a gomponents tree. gomponents does not
// pass a context down, so the one given here is used for the templ render.
func Templ(ctx context.Context, component templ.Component) gomponents.Node {
	if ctx == nil {
		ctx = context.Background()
	}
	return gomponents.NodeFunc(func(w io.Writer) error {
		return component.Render(ctx, w)
	})
}

// Gomponent embeds a gomponents node in a templ tree.
func Gomponent(node gomponents.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return node.Render(w)
	})
}
