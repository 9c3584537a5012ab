package pages

import (
	"strings"

	"github.com/nfrund/amantech/internal/components"
	"github.com/nfrund/amantech/internal/content"

	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// FooterLinkID is the element id of a footer quick link.
func FooterLinkID(href string) string {
	return "footer-link-" + strings.TrimPrefix(href, "#")
}

// SiteFooter renders the page footer. year is the copyright year.
func SiteFooter(cat *content.Catalog, year int) gomponents.Node {
	company := cat.Company()
	return Footer(
		ID(components.SectionFooter),
		Class("site-footer"),
		Div(
			Class("footer-brand"),
			H3(gomponents.Text(company.Name)),
			P(gomponents.Text(company.Tagline)),
		),
		Div(
			Class("footer-links"),
			H4(gomponents.Text("Quick Links")),
			Ul(gomponents.Map(cat.QuickLinks(), func(l content.FooterLink) gomponents.Node {
				return Li(A(ID(FooterLinkID(l.Href)), Href(l.Href), wsSend(), gomponents.Text(l.Label)))
			})),
		),
		Div(
			Class("footer-contact"),
			H4(gomponents.Text("Contact Info")),
			Ul(gomponents.Map(cat.ContactInfo(), func(c content.ContactInfo) gomponents.Node {
				return Li(
					Span(Class("contact-label"), Aria("hidden", "true"), gomponents.Text(c.Label)),
					gomponents.Text(" "+c.Value),
				)
			})),
		),
		P(
			Class("copyright"),
			gomponents.Textf("© %d %s. All rights reserved.", year, company.Name),
		),
	)
}
