package pages

import (
	"github.com/nfrund/amantech/internal/components"
	"github.com/nfrund/amantech/internal/domain"

	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// ContactFormID is the id of the inquiry form. ContactPath is where it posts
// when there is no live session; the fragment in contactAction brings a
// re-rendered form back into view.
const (
	ContactFormID = "contact-form"
	ContactPath   = "/contact"

	contactAction = ContactPath + "#" + components.SectionContact
)

// CallToAction renders the closing call-to-action block with the contact
// form inside it.
func CallToAction(form domain.FormData) gomponents.Node {
	return Section(
		ID(components.SectionCallToAction),
		Class("call-to-action"),
		sectionHeading("Ready to Start Your Project?", "Tell us what you need and our engineers will get back to you."),
		Div(
			Class("cta-actions"),
			Button(ID(CTAGetStartedID), Type("button"), Class("btn btn-primary"), wsSend(), gomponents.Text("Get Started")),
			Button(ID(CTAContactUsID), Type("button"), Class("btn btn-secondary"), wsSend(), gomponents.Text("Contact Us")),
		),
		Div(
			ID(components.SectionContact),
			Class("contact"),
			H3(gomponents.Text("Send Us an Inquiry")),
			ContactForm(form, false),
		),
	)
}

// ContactForm renders the inquiry form holding form's values. With oob set
// it replaces the form already on the page.
func ContactForm(form domain.FormData, oob bool) gomponents.Node {
	return Form(
		ID(ContactFormID),
		Class("contact-form"),
		Action(contactAction),
		Method("post"),
		wsSend(),
		gomponents.If(oob, hx.SwapOOB("true")),
		field("name", "Name", "text", form.Name, true),
		field("email", "Email", "email", form.Email, true),
		field("company", "Company", "text", form.Company, false),
		field("phone", "Phone", "tel", form.Phone, false),
		Div(
			Class("form-field"),
			Label(For("contact-message"), gomponents.Text("Message *")),
			Textarea(ID("contact-message"), Name("message"), gomponents.Attr("rows", "5"), gomponents.Text(form.Message)),
		),
		Button(Type("submit"), Class("btn btn-primary"), gomponents.Text("Send Inquiry")),
	)
}

// field renders a labelled input. Required fields are marked for the reader
// only; emptiness is checked on submit.
func field(name, label, typ, value string, required bool) gomponents.Node {
	if required {
		label += " *"
	}
	id := "contact-" + name
	return Div(
		Class("form-field"),
		Label(For(id), gomponents.Text(label)),
		Input(ID(id), Name(name), Type(typ), Value(value)),
	)
}
