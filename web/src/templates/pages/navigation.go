package pages

import (
	"github.com/nfrund/amantech/internal/components"
	"github.com/nfrund/amantech/internal/content"

	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// NavMenuID is the list the menu toggle opens and closes.
const NavMenuID = "nav-menu"

type navLink struct {
	label   string
	section string
}

var navLinks = []navLink{
	{"Home", components.SectionHome},
	{"About", components.SectionAbout},
	{"History", components.SectionHistory},
	{"Services", components.SectionServices},
	{"Products", components.SectionProducts},
	{"Contact", components.SectionContact},
}

// NavLinkID is the element id of the navigation link to section.
func NavLinkID(section string) string { return "nav-link-" + section }

// Navigation renders the top bar.
func Navigation(company content.Company, menuOpen bool) gomponents.Node {
	return Nav(
		ID(components.SectionNavigation),
		Class("site-nav"),
		A(ID("nav-brand"), Class("brand"), Href("#"+components.SectionHome), wsSend(), gomponents.Text(company.Name)),
		Button(
			ID(components.MenuToggleID),
			Type("button"),
			Class("menu-toggle"),
			Aria("controls", NavMenuID),
			Aria("label", "Toggle menu"),
			wsSend(),
			gomponents.Text("☰"),
		),
		NavMenu(menuOpen, false),
	)
}

// NavMenu renders the link list. With oob set it replaces the list already
// on the page.
func NavMenu(open bool, oob bool) gomponents.Node {
	state := "closed"
	if open {
		state = "open"
	}

	items := make([]gomponents.Node, 0, len(navLinks))
	for _, l := range navLinks {
		items = append(items, Li(A(
			ID(NavLinkID(l.section)),
			Href("#"+l.section),
			wsSend(),
			gomponents.Text(l.label),
		)))
	}

	return Ul(
		ID(NavMenuID),
		Class("nav-menu nav-menu-"+state),
		Data("state", state),
		gomponents.If(oob, hx.SwapOOB("true")),
		gomponents.Group(items),
	)
}

// wsSend marks an element whose activation is sent over the live session.
func wsSend() gomponents.Node {
	return gomponents.Attr("ws-send")
}
