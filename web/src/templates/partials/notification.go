// Package partials holds page fragments that are rendered on their own:
// the notification dialog and the out-of-band updates a live session pushes.
package partials

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/amantech/internal/view"
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// NotificationsID is the container every notice is rendered into.
const NotificationsID = "notifications"

// Notification renders a dismissible dialog. kind is "success" or "error".
func Notification(kind, message string) templ.Component {
	role := "status"
	if kind == "error" {
		role = "alert"
	}
	return view.Gomponent(gomponents.El("dialog",
		gomponents.Attr("open"),
		Class("notice notice-"+kind),
		Role(role),
		Data("kind", kind),
		P(Class("notice-message"), gomponents.Text(message)),
		Form(Method("dialog"),
			Button(Type("submit"), Class("notice-close"), gomponents.Text("OK")),
		),
	))
}

// Notifications renders the notification container holding notices, in
// order. With oob set the container replaces the one on the page.
func Notifications(oob bool, notices ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Div(
			ID(NotificationsID),
			Aria("live", "polite"),
			gomponents.If(oob, hx.SwapOOB("true")),
			gomponents.Map(notices, func(n templ.Component) gomponents.Node {
				return view.Templ(ctx, n)
			}),
		).Render(w)
	})
}
