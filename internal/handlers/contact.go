package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/amantech/internal/components"
	"github.com/nfrund/amantech/internal/middleware"
	"github.com/nfrund/amantech/internal/view"
)

// ContactRedirect is where the form fallback sends the visitor after an
// accepted inquiry.
const ContactRedirect = "/#" + components.SectionContact

// ContactHandler is the plain form POST path of the contact form, used when
// the page has no live session.
type ContactHandler struct {
	recorder components.Recorder
	home     *HomeHandler
}

// NewContactHandler creates a ContactHandler. home renders the page a
// rejected form is shown on.
func NewContactHandler(recorder components.Recorder, home *HomeHandler) *ContactHandler {
	return &ContactHandler{recorder: recorder, home: home}
}

// noticeCollector keeps the component's notices for this response.
type noticeCollector struct {
	notices view.FlashData
}

func (n *noticeCollector) Notify(_ context.Context, kind components.NoticeKind, message string) {
	if kind == components.NoticeError {
		n.notices.Error = append(n.notices.Error, message)
		return
	}
	n.notices.Success = append(n.notices.Success, message)
}

// ContactPost submits the form. An accepted inquiry redirects to the
// contact section with the confirmation as a flash. A rejected one is
// answered with the page itself, the form as typed and the rejection shown.
func (h *ContactHandler) ContactPost(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission.").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Form fields are too long.").SetInternal(err)
	}

	ctx := c.Request().Context()
	notices := &noticeCollector{}
	contact := components.NewContact(notices, h.recorder)
	contact.SetForm(req.FormData())

	outcome, err := contact.Submit(ctx)
	if outcome == components.OutcomeRejected {
		middleware.FromContext(ctx).Debug("Inquiry rejected", "error", err)
		return h.home.renderHome(c, http.StatusUnprocessableEntity, contact.Form(), notices.notices)
	}

	for _, msg := range notices.notices.Success {
		view.SetFlashSuccess(c, msg)
	}
	return c.Redirect(http.StatusSeeOther, ContactRedirect)
}
