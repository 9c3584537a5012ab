package binding

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

type registration struct {
	id      int
	handler ClickHandler
}

// Document implements Binding over a parsed HTML page. Clicks are dispatched
// by the transport through Click; scroll requests are queued until the
// transport collects them with TakeEffects.
//
// A Document belongs to one page session and is not safe for concurrent use.
type Document struct {
	root     *html.Node
	handlers map[*html.Node][]registration
	nextID   int
	effects  []ScrollEffect
}

var _ Binding = (*Document)(nil)

// Parse builds a Document from rendered HTML.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return &Document{
		root:     root,
		handlers: make(map[*html.Node][]registration),
	}, nil
}

// ParseString is Parse for an in-memory page.
func ParseString(page string) (*Document, error) {
	return Parse(strings.NewReader(page))
}

// FindByID implements Binding.
func (d *Document) FindByID(id string) (*Element, bool) {
	if id == "" {
		return nil, false
	}
	var found *html.Node
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Namespace == "" && a.Key == "id" && a.Val == id {
					found = n
					return true
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	if !walk(d.root) {
		return nil, false
	}
	return &Element{node: found}, true
}

// FindAll implements Binding.
func (d *Document) FindAll(selector string) ([]*Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	nodes := sel.MatchAll(d.root)
	out := make([]*Element, len(nodes))
	for i, n := range nodes {
		out[i] = &Element{node: n}
	}
	return out, nil
}

// OnClick implements Binding.
func (d *Document) OnClick(el *Element, h ClickHandler) func() {
	d.nextID++
	id := d.nextID
	d.handlers[el.node] = append(d.handlers[el.node], registration{id: id, handler: h})

	return func() {
		regs := d.handlers[el.node]
		for i, r := range regs {
			if r.id == id {
				regs = append(regs[:i:i], regs[i+1:]...)
				break
			}
		}
		if len(regs) == 0 {
			delete(d.handlers, el.node)
			return
		}
		d.handlers[el.node] = regs
	}
}

// ScrollIntoView implements Binding.
func (d *Document) ScrollIntoView(el *Element, smooth bool) {
	d.effects = append(d.effects, ScrollEffect{TargetID: el.ID(), Smooth: smooth})
}

// Click dispatches a click on el to its handlers in registration order.
func (d *Document) Click(el *Element) *ClickEvent {
	ev := &ClickEvent{Target: el}
	regs := append([]registration(nil), d.handlers[el.node]...)
	for _, r := range regs {
		r.handler(ev)
	}
	return ev
}

// ClickByID clicks the element with the given id. It reports false when no
// such element exists.
func (d *Document) ClickByID(id string) (*ClickEvent, bool) {
	el, ok := d.FindByID(id)
	if !ok {
		return nil, false
	}
	return d.Click(el), true
}

// TakeEffects returns and clears the queued scroll effects.
func (d *Document) TakeEffects() []ScrollEffect {
	out := d.effects
	d.effects = nil
	return out
}

// ListenerCount is the number of click handlers currently registered.
func (d *Document) ListenerCount() int {
	n := 0
	for _, regs := range d.handlers {
		n += len(regs)
	}
	return n
}
