package inquiry

import (
	"bytes"
	"context"
	"fmt"

	"github.com/nfrund/amantech/internal/domain"
	"github.com/nfrund/amantech/internal/email"
	"github.com/nfrund/amantech/internal/pubsub"
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// MailSubscriber forwards every published inquiry to a fixed recipient.
type MailSubscriber struct {
	sender email.Sender
	to     string
}

// NewMailSubscriber creates a subscriber mailing inquiries to to.
func NewMailSubscriber(sender email.Sender, to string) *MailSubscriber {
	return &MailSubscriber{sender: sender, to: to}
}

// Start subscribes to Submitted until ctx is canceled.
func (s *MailSubscriber) Start(ctx context.Context, sub pubsub.Subscriber) error {
	return Submitted.Subscribe(ctx, sub, s.handle)
}

func (s *MailSubscriber) handle(ctx context.Context, inq domain.Inquiry, _ pubsub.Message) error {
	body, err := MailBody(inq)
	if err != nil {
		return err
	}
	return s.sender.Send(ctx, email.Message{
		To:      s.to,
		Subject: MailSubject(inq),
		HTML:    body,
	})
}

// MailSubject is the subject line of the notification for inq.
func MailSubject(inq domain.Inquiry) string {
	if inq.Form.Company != "" {
		return fmt.Sprintf("New inquiry from %s (%s)", inq.Form.Name, inq.Form.Company)
	}
	return fmt.Sprintf("New inquiry from %s", inq.Form.Name)
}

// MailBody renders the notification HTML for inq. All values are escaped.
func MailBody(inq domain.Inquiry) (string, error) {
	row := func(label, value string) gomponents.Node {
		if value == "" {
			value = "-"
		}
		return Tr(Th(gomponents.Text(label)), Td(gomponents.Text(value)))
	}

	var buf bytes.Buffer
	err := Div(
		H2(gomponents.Text("New website inquiry")),
		Table(
			row("Name", inq.Form.Name),
			row("Email", inq.Form.Email),
			row("Company", inq.Form.Company),
			row("Phone", inq.Form.Phone),
			row("Received", inq.SubmittedAt.UTC().Format("2006-01-02 15:04 MST")),
			row("Reference", inq.ID.String()),
		),
		P(Style("white-space: pre-wrap"), gomponents.Text(inq.Form.Message)),
	).Render(&buf)
	if err != nil {
		return "", fmt.Errorf("failed to render inquiry email: %w", err)
	}
	return buf.String(), nil
}
