package partials

import (
	"strconv"

	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// Ids of the signal elements the client script watches.
const (
	ScrollSignalID   = "scroll-signal"
	RedirectSignalID = "redirect-signal"
)

// ScrollSignal asks the browser to scroll to targetID. seq changes on every
// request so a repeated scroll to the same section is still applied.
func ScrollSignal(targetID string, smooth bool, seq int) gomponents.Node {
	behavior := "auto"
	if smooth {
		behavior = "smooth"
	}
	return Div(
		ID(ScrollSignalID),
		hx.SwapOOB("true"),
		Data("target", targetID),
		Data("behavior", behavior),
		Data("seq", strconv.Itoa(seq)),
	)
}

// RedirectSignal asks the browser to leave the page for location.
func RedirectSignal(location string) gomponents.Node {
	return Div(
		ID(RedirectSignalID),
		hx.SwapOOB("true"),
		Data("location", location),
	)
}

// Signals renders the empty signal placeholders for a full page.
func Signals() gomponents.Node {
	return gomponents.Group([]gomponents.Node{
		Div(ID(ScrollSignalID), gomponents.Attr("hidden")),
		Div(ID(RedirectSignalID), gomponents.Attr("hidden")),
	})
}
