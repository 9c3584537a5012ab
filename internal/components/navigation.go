package components

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nfrund/amantech/internal/binding"
)

const (
	// MenuToggleID is the id of the control that opens the mobile menu.
	MenuToggleID = "menuToggle"
	// AnchorSelector matches every in-page link.
	AnchorSelector = `a[href^="#"]`
)

// ErrNoBinding is returned when a component is activated without a view.
var ErrNoBinding = errors.New("component activated without a binding")

// Navigation owns the mobile "menu open" flag and the smooth-scroll
// behaviour of in-page links.
type Navigation struct {
	menuOpen bool
	view     binding.Binding
	removers []func()
}

// NewNavigation returns a navigation with the menu closed.
func NewNavigation() *Navigation {
	return &Navigation{}
}

// MenuOpen reports whether the mobile menu is open.
func (n *Navigation) MenuOpen() bool {
	return n.menuOpen
}

// Active reports whether listeners are attached.
func (n *Navigation) Active() bool {
	return n.view != nil
}

// Activate attaches the toggle listener and one listener per in-page link.
// A missing toggle control is not an error. Activating an already active
// navigation detaches the previous listeners first.
func (n *Navigation) Activate(view binding.Binding) error {
	if view == nil {
		return ErrNoBinding
	}
	n.Deactivate()

	anchors, err := view.FindAll(AnchorSelector)
	if err != nil {
		return fmt.Errorf("failed to find in-page links: %w", err)
	}

	n.view = view
	if toggle, ok := view.FindByID(MenuToggleID); ok {
		n.removers = append(n.removers, view.OnClick(toggle, n.onToggle))
	}
	for _, a := range anchors {
		n.removers = append(n.removers, view.OnClick(a, n.onAnchorClick))
	}
	return nil
}

// Deactivate removes every listener attached by Activate.
func (n *Navigation) Deactivate() {
	for _, remove := range n.removers {
		remove()
	}
	n.removers = nil
	n.view = nil
}

func (n *Navigation) onToggle(*binding.ClickEvent) {
	n.menuOpen = !n.menuOpen
}

func (n *Navigation) onAnchorClick(ev *binding.ClickEvent) {
	ev.PreventDefault()
	if n.view == nil {
		return
	}

	href, _ := ev.Target.Attr("href")
	target, ok := n.view.FindByID(strings.TrimPrefix(href, "#"))
	if !ok {
		return
	}
	n.view.ScrollIntoView(target, true)
	n.menuOpen = false
}
