// Package layouts holds the page shell shared by every full page.
package layouts

import (
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// Asset locations served from the embedded web/static tree.
const (
	StylesheetPath = "/static/css/site.css"
	LiveScriptPath = "/static/js/live.js"
	htmxScript     = "https://unpkg.com/htmx.org@1.9.12"
	htmxWSScript   = "https://unpkg.com/htmx.org@1.9.12/dist/ext/ws.js"
)

// PageProps configures the shell.
type PageProps struct {
	Title       string
	Description string
	// LiveURL is the websocket endpoint the page connects to. Empty renders
	// a page without a live session, as in the static build.
	LiveURL string
}

// Page wraps body in the document shell.
func Page(props PageProps, body ...gomponents.Node) gomponents.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				gomponents.If(props.Description != "", Meta(Name("description"), Content(props.Description))),
				TitleEl(gomponents.Text(CalculateTitle(props.Title))),
				Link(Rel("stylesheet"), Href(StylesheetPath)),
				gomponents.If(props.LiveURL != "", gomponents.Group([]gomponents.Node{
					Script(Src(htmxScript)),
					Script(Src(htmxWSScript)),
					Script(Src(LiveScriptPath), Defer()),
				})),
			),
			Body(
				gomponents.If(props.LiveURL != "", gomponents.Group([]gomponents.Node{
					hx.Ext("ws"),
					gomponents.Attr("ws-connect", props.LiveURL),
				})),
				gomponents.Group(body),
			),
		),
	)
}
