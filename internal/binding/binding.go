// Package binding is the boundary between page components and the rendered
// page. Components locate elements, listen for clicks and request scrolling
// only through the Binding interface, so their logic runs the same against
// a live page session and a test fixture.
package binding

import "golang.org/x/net/html"

// Binding is the capability set a component receives on activation.
type Binding interface {
	// FindByID returns the element with the given id, if any.
	FindByID(id string) (*Element, bool)
	// FindAll returns every element matching a CSS selector, in document order.
	FindAll(selector string) ([]*Element, error)
	// OnClick registers h for clicks on el and returns a func removing it.
	OnClick(el *Element, h ClickHandler) (remove func())
	// ScrollIntoView asks the view to bring el into the viewport.
	ScrollIntoView(el *Element, smooth bool)
}

// ClickHandler handles a click dispatched to an element.
type ClickHandler func(ev *ClickEvent)

// ClickEvent is passed to click handlers.
type ClickEvent struct {
	Target    *Element
	prevented bool
}

// PreventDefault suppresses the browser's default action (following a link).
func (e *ClickEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether a handler called PreventDefault.
func (e *ClickEvent) DefaultPrevented() bool { return e.prevented }

// Element is a handle on a node of the page.
type Element struct {
	node *html.Node
}

// ID returns the element's id attribute.
func (e *Element) ID() string {
	id, _ := e.Attr("id")
	return id
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.node.Data
}

// Attr returns the value of an attribute.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Same reports whether both handles point at the same node.
func (e *Element) Same(other *Element) bool {
	return other != nil && e.node == other.node
}

// ScrollEffect is a scroll request waiting to be applied by the view.
type ScrollEffect struct {
	TargetID string
	Smooth   bool
}
