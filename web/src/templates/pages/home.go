// Package pages composes full pages from the site content.
package pages

import (
	"context"

	"github.com/nfrund/amantech/internal/components"
	"github.com/nfrund/amantech/internal/content"
	"github.com/nfrund/amantech/internal/domain"
	"github.com/nfrund/amantech/internal/view"
	"github.com/nfrund/amantech/web/src/templates/layouts"
	"github.com/nfrund/amantech/web/src/templates/partials"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HomeProps is everything the home page renders from.
type HomeProps struct {
	Catalog  *content.Catalog
	MenuOpen bool
	Form     domain.FormData
	Flash    view.FlashData
	Year     int
	LiveURL  string
}

// Home renders the landing page with its sections in root order.
func Home(p HomeProps) gomponents.Node {
	company := p.Catalog.Company()

	sections := make([]gomponents.Node, 0, len(components.RootOrder))
	for _, s := range components.RootOrder {
		sections = append(sections, section(s.Name, p))
	}

	return layouts.Page(
		layouts.PageProps{Description: company.Tagline, LiveURL: p.LiveURL},
		gomponents.Group(sections),
		view.Templ(context.Background(), partials.Notifications(false, flashNotices(p.Flash)...)),
		partials.Signals(),
	)
}

func section(name string, p HomeProps) gomponents.Node {
	switch name {
	case "Navigation":
		return Navigation(p.Catalog.Company(), p.MenuOpen)
	case "Hero":
		return Hero(p.Catalog.Company())
	case "About":
		return About(p.Catalog.Company(), p.Catalog.Highlights())
	case "History":
		return History(p.Catalog.Milestones())
	case "Services":
		return Services(p.Catalog.Services())
	case "FeaturedProducts":
		return FeaturedProducts(p.Catalog.FeaturedProducts())
	case "Testimonials":
		return Testimonials(p.Catalog.Testimonials())
	case "CallToAction":
		return CallToAction(p.Form)
	case "Footer":
		return SiteFooter(p.Catalog, p.Year)
	}
	return nil
}

func flashNotices(f view.FlashData) []templ.Component {
	notices := make([]templ.Component, 0, len(f.Success)+len(f.Error))
	for _, msg := range f.Success {
		notices = append(notices, partials.Notification(components.NoticeSuccess.String(), msg))
	}
	for _, msg := range f.Error {
		notices = append(notices, partials.Notification(components.NoticeError.String(), msg))
	}
	return notices
}

func sectionHeading(title, lead string) gomponents.Node {
	return Header(
		Class("section-heading"),
		H2(gomponents.Text(title)),
		gomponents.If(lead != "", P(Class("section-lead"), gomponents.Text(lead))),
	)
}
