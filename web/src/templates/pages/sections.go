package pages

import (
	"github.com/nfrund/amantech/internal/components"
	"github.com/nfrund/amantech/internal/content"

	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Button ids of the hero, call-to-action and featured products blocks.
const (
	HeroInquireID     = "hero-inquire"
	HeroLearnMoreID   = "hero-learn-more"
	CTAGetStartedID   = "cta-get-started"
	CTAContactUsID    = "cta-contact-us"
	ViewAllProductsID = "view-all-products"
)

func Hero(company content.Company) gomponents.Node {
	return Section(
		ID(components.SectionHome),
		Class("hero"),
		P(Class("hero-tagline"), gomponents.Text(company.Tagline)),
		H1(gomponents.Text(company.Headline)),
		P(Class("hero-summary"), gomponents.Text(company.Summary)),
		Div(
			Class("hero-actions"),
			Button(ID(HeroInquireID), Type("button"), Class("btn btn-primary"), wsSend(), gomponents.Text("Inquire Now")),
			Button(ID(HeroLearnMoreID), Type("button"), Class("btn btn-secondary"), wsSend(), gomponents.Text("Learn More")),
		),
	)
}

func About(company content.Company, highlights []string) gomponents.Node {
	return Section(
		ID(components.SectionAbout),
		Class("about"),
		sectionHeading("About "+company.Name, company.Summary),
		Ul(
			Class("highlights"),
			gomponents.Map(highlights, func(h string) gomponents.Node {
				return Li(gomponents.Text(h))
			}),
		),
	)
}

func History(milestones []content.Milestone) gomponents.Node {
	return Section(
		ID(components.SectionHistory),
		Class("history"),
		sectionHeading("Our History", "Nearly three decades of precision manufacturing."),
		Ol(
			Class("timeline"),
			gomponents.Map(milestones, func(m content.Milestone) gomponents.Node {
				return Li(
					Class("milestone"),
					Span(Class("milestone-year"), gomponents.Text(m.Year)),
					H3(gomponents.Text(m.Title)),
					P(gomponents.Text(m.Description)),
				)
			}),
		),
	)
}

func Services(services []content.ServiceItem) gomponents.Node {
	return Section(
		ID(components.SectionServices),
		Class("services"),
		sectionHeading("Our Services", ""),
		Div(
			Class("card-grid"),
			gomponents.Map(services, func(s content.ServiceItem) gomponents.Node {
				return Article(
					Class("card"),
					Span(Class("card-icon"), Aria("hidden", "true"), gomponents.Text(s.Icon)),
					H3(gomponents.Text(s.Title)),
					P(gomponents.Text(s.Description)),
				)
			}),
		),
	)
}

// FeaturedProducts renders the teaser cards. "View all" is a real link so it
// also works without a live session.
func FeaturedProducts(products []content.ProductSummary) gomponents.Node {
	return Section(
		ID(components.SectionProducts),
		Class("featured-products"),
		sectionHeading("Featured Products", ""),
		Div(
			Class("card-grid"),
			gomponents.Map(products, func(p content.ProductSummary) gomponents.Node {
				return Article(
					Class("card"),
					Span(Class("card-icon"), Aria("hidden", "true"), gomponents.Text(p.Icon)),
					H3(gomponents.Text(p.Name)),
					P(gomponents.Text(p.Description)),
				)
			}),
		),
		A(ID(ViewAllProductsID), Href(components.ProductsPath), Class("btn btn-primary"), wsSend(), gomponents.Text("View All Products")),
	)
}

func Testimonials(items []content.Testimonial) gomponents.Node {
	return Section(
		ID(components.SectionTestimonials),
		Class("testimonials"),
		sectionHeading("What Our Clients Say", ""),
		Div(
			Class("card-grid"),
			gomponents.Map(items, func(t content.Testimonial) gomponents.Node {
				return Figure(
					Class("testimonial"),
					BlockQuote(P(gomponents.Text(t.Text))),
					FigCaption(gomponents.Text(t.Author)),
				)
			}),
		),
	)
}
