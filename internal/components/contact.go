package components

import (
	"context"
	"time"

	"github.com/nfrund/amantech/internal/domain"
)

// NoticeKind tells the confirmation channel how to present a message.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

func (k NoticeKind) String() string {
	if k == NoticeError {
		return "error"
	}
	return "success"
}

// Notifier shows a message to the visitor.
type Notifier interface {
	Notify(ctx context.Context, kind NoticeKind, message string)
}

// Recorder receives accepted inquiries for the diagnostic channel. It must
// not block the visitor and has no way to fail the submission.
type Recorder interface {
	Record(ctx context.Context, inq domain.Inquiry)
}

// Outcome is the result of a submission.
type Outcome int

const (
	OutcomeRejected Outcome = iota
	OutcomeAccepted
)

// Contact owns the editable inquiry form.
type Contact struct {
	form     domain.FormData
	notifier Notifier
	recorder Recorder
	now      func() time.Time
}

// NewContact returns a contact component with an empty form.
func NewContact(notifier Notifier, recorder Recorder) *Contact {
	return &Contact{notifier: notifier, recorder: recorder, now: time.Now}
}

// Form returns the current form values.
func (c *Contact) Form() domain.FormData {
	return c.form
}

// SetForm replaces the form values with user input.
func (c *Contact) SetForm(f domain.FormData) {
	c.form = f
}

// Submit validates the form. An accepted form is recorded, confirmed to the
// visitor and cleared. A rejected form is left as typed and the returned
// error is a *domain.ValidationError.
func (c *Contact) Submit(ctx context.Context) (Outcome, error) {
	if err := c.form.Validate(); err != nil {
		c.notifier.Notify(ctx, NoticeError, domain.MsgInquiryRejected)
		return OutcomeRejected, err
	}

	c.recorder.Record(ctx, domain.NewInquiry(c.form, c.now()))
	c.notifier.Notify(ctx, NoticeSuccess, domain.MsgInquiryAccepted)
	c.form = domain.FormData{}
	return OutcomeAccepted, nil
}
