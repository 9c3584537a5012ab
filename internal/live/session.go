// Package live runs the interactive side of the home page over a websocket.
// Each connection gets a Session that mirrors the page the visitor has,
// binds the page components to it and answers every click with the
// out-of-band fragments that bring the browser up to date.
package live

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/nfrund/amantech/internal/binding"
	"github.com/nfrund/amantech/internal/components"
	"github.com/nfrund/amantech/internal/content"
	"github.com/nfrund/amantech/web/src/templates/pages"
	"github.com/nfrund/amantech/web/src/templates/partials"
)

type notice struct {
	kind    components.NoticeKind
	message string
}

// Session is the server side of one open page. It is driven by a single
// goroutine and is not safe for concurrent use.
type Session struct {
	ID uuid.UUID

	doc      *binding.Document
	nav      *components.Navigation
	hero     *components.Hero
	cta      *components.CallToAction
	contact  *components.Contact
	featured *components.FeaturedProducts

	removers []func()
	notices  []notice
	redirect string
	seq      int
	logger   *slog.Logger
}

// NewSession binds the page components to the rendered page.
func NewSession(page []byte, cat *content.Catalog, recorder components.Recorder, logger *slog.Logger) (*Session, error) {
	doc, err := binding.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Session{
		ID:       uuid.New(),
		doc:      doc,
		nav:      components.NewNavigation(),
		hero:     components.NewHero(doc),
		cta:      components.NewCallToAction(doc),
		featured: components.NewFeaturedProducts(cat),
	}
	s.logger = logger.With("session_id", s.ID.String())
	s.contact = components.NewContact(s, recorder)

	if err := s.nav.Activate(doc); err != nil {
		return nil, fmt.Errorf("failed to activate navigation: %w", err)
	}
	s.bind(pages.HeroInquireID, components.ActionInquire.Name, s.hero.Inquire)
	s.bind(pages.HeroLearnMoreID, components.ActionLearnMore.Name, s.hero.LearnMore)
	s.bind(pages.CTAGetStartedID, components.ActionGetStarted.Name, s.cta.GetStarted)
	s.bind(pages.CTAContactUsID, components.ActionContactUs.Name, s.cta.ContactUs)
	s.bind(pages.ViewAllProductsID, "viewAll", func() { s.featured.ViewAll(s) })
	return s, nil
}

// bind runs action, named for the logs, when the element with id is
// clicked.
func (s *Session) bind(id, name string, action func()) {
	el, ok := s.doc.FindByID(id)
	if !ok {
		s.logger.Warn("Action control missing from page", "action", name, "element_id", id)
		return
	}
	s.removers = append(s.removers, s.doc.OnClick(el, func(ev *binding.ClickEvent) {
		ev.PreventDefault()
		s.logger.Debug("Action triggered", "action", name, "element_id", id)
		action()
	}))
}

// MenuOpen reports the navigation menu state.
func (s *Session) MenuOpen() bool { return s.nav.MenuOpen() }

// Contact exposes the session's contact form.
func (s *Session) Contact() *components.Contact { return s.contact }

// Notify implements components.Notifier by queueing a dialog.
func (s *Session) Notify(_ context.Context, kind components.NoticeKind, message string) {
	s.notices = append(s.notices, notice{kind: kind, message: message})
}

// NavigateTo implements components.Navigator by queueing a redirect.
func (s *Session) NavigateTo(path string) {
	s.redirect = path
}

// Handle applies one inbound frame and returns the fragments to send back,
// in the order the browser should apply them. An unknown trigger yields no
// fragments.
func (s *Session) Handle(ctx context.Context, in Inbound) []any {
	menuWas := s.nav.MenuOpen()

	if in.Trigger == pages.ContactFormID {
		s.contact.SetForm(in.Form)
		outcome, err := s.contact.Submit(ctx)
		if err != nil {
			s.logger.DebugContext(ctx, "Inquiry rejected", "error", err)
		}
		out := s.drain(menuWas)
		if outcome == components.OutcomeAccepted {
			out = append(out, pages.ContactForm(s.contact.Form(), true))
		}
		return out
	}

	if _, ok := s.doc.ClickByID(in.Trigger); !ok {
		s.logger.DebugContext(ctx, "Click on unknown element", "trigger", in.Trigger)
	}
	return s.drain(menuWas)
}

// drain turns everything queued by the components into fragments.
func (s *Session) drain(menuWas bool) []any {
	var out []any

	if open := s.nav.MenuOpen(); open != menuWas {
		out = append(out, pages.NavMenu(open, true))
	}

	// Only the last scroll matters; the page can be in one place.
	if effects := s.doc.TakeEffects(); len(effects) > 0 {
		last := effects[len(effects)-1]
		s.seq++
		out = append(out, partials.ScrollSignal(last.TargetID, last.Smooth, s.seq))
	}

	if len(s.notices) > 0 {
		dialogs := make([]templ.Component, 0, len(s.notices))
		for _, n := range s.notices {
			dialogs = append(dialogs, partials.Notification(n.kind.String(), n.message))
		}
		out = append(out, partials.Notifications(true, dialogs...))
		s.notices = nil
	}

	if s.redirect != "" {
		out = append(out, partials.RedirectSignal(s.redirect))
		s.redirect = ""
	}
	return out
}

// Close detaches every listener the session attached.
func (s *Session) Close() {
	s.nav.Deactivate()
	for _, remove := range s.removers {
		remove()
	}
	s.removers = nil
}
