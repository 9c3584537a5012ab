// Package components holds the interactive behaviour of the site's page
// components. Rendering lives in web/src/templates; these types only own
// state and react to events delivered through a binding.Binding.
package components

// Section anchor ids used by the page and by scroll targets.
const (
	SectionNavigation   = "navigation"
	SectionHome         = "home"
	SectionAbout        = "about"
	SectionHistory      = "history"
	SectionServices     = "services"
	SectionProducts     = "products"
	SectionTestimonials = "testimonials"
	SectionCallToAction = "get-started"
	SectionContact      = "contact"
	SectionFooter       = "footer"
)

// Section is one block of the home page.
type Section struct {
	Name string
	ID   string
}

// RootOrder is the fixed vertical order of the home page. The contact form
// is part of the call-to-action block and has no entry of its own.
var RootOrder = []Section{
	{Name: "Navigation", ID: SectionNavigation},
	{Name: "Hero", ID: SectionHome},
	{Name: "About", ID: SectionAbout},
	{Name: "History", ID: SectionHistory},
	{Name: "Services", ID: SectionServices},
	{Name: "FeaturedProducts", ID: SectionProducts},
	{Name: "Testimonials", ID: SectionTestimonials},
	{Name: "CallToAction", ID: SectionCallToAction},
	{Name: "Footer", ID: SectionFooter},
}
