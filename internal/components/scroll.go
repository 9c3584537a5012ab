package components

import "github.com/nfrund/amantech/internal/binding"

// ScrollAction smooth-scrolls to a fixed section. It does nothing when the
// section is not on the page.
type ScrollAction struct {
	Name      string
	SectionID string
}

// Run performs the scroll against view.
func (a ScrollAction) Run(view binding.Binding) {
	if view == nil {
		return
	}
	if el, ok := view.FindByID(a.SectionID); ok {
		view.ScrollIntoView(el, true)
	}
}

var (
	ActionInquire    = ScrollAction{Name: "inquire", SectionID: SectionContact}
	ActionLearnMore  = ScrollAction{Name: "learnMore", SectionID: SectionAbout}
	ActionGetStarted = ScrollAction{Name: "getStarted", SectionID: SectionContact}
	ActionContactUs  = ScrollAction{Name: "contactUs", SectionID: SectionContact}
)

// Hero exposes the hero banner's buttons.
type Hero struct {
	view binding.Binding
}

// NewHero binds the hero actions to a view.
func NewHero(view binding.Binding) *Hero {
	return &Hero{view: view}
}

// Inquire scrolls to the contact form.
func (h *Hero) Inquire() { ActionInquire.Run(h.view) }

// LearnMore scrolls to the about section.
func (h *Hero) LearnMore() { ActionLearnMore.Run(h.view) }

// CallToAction exposes the call-to-action buttons.
type CallToAction struct {
	view binding.Binding
}

// NewCallToAction binds the call-to-action buttons to a view.
func NewCallToAction(view binding.Binding) *CallToAction {
	return &CallToAction{view: view}
}

func (c *CallToAction) GetStarted() { ActionGetStarted.Run(c.view) }
func (c *CallToAction) ContactUs()  { ActionContactUs.Run(c.view) }
