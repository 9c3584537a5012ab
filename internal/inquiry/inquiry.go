// Package inquiry is the diagnostic channel for accepted contact-form
// submissions. Submissions are published on the in-process bus, logged by one
// subscriber and optionally mailed by another. Nothing is stored.
package inquiry

import (
	"context"
	"log/slog"

	"github.com/nfrund/amantech/internal/components"
	"github.com/nfrund/amantech/internal/domain"
	"github.com/nfrund/amantech/internal/pubsub"
)

// Submitted is the topic accepted inquiries are published on.
var Submitted = pubsub.NewEvent[domain.Inquiry]("contact.inquiry.submitted")

// PubSubRecorder publishes accepted inquiries. Publishing is fire-and-forget:
// failures are logged and never reach the visitor.
type PubSubRecorder struct {
	pub    pubsub.Publisher
	source string
}

var _ components.Recorder = (*PubSubRecorder)(nil)

// NewPubSubRecorder creates a recorder tagging messages with their source
// ("http" or "live").
func NewPubSubRecorder(pub pubsub.Publisher, source string) *PubSubRecorder {
	return &PubSubRecorder{pub: pub, source: source}
}

// Record implements components.Recorder.
func (r *PubSubRecorder) Record(ctx context.Context, inq domain.Inquiry) {
	err := Submitted.Publish(ctx, r.pub, inq, map[string]string{"source": r.source})
	if err != nil {
		slog.Error("Failed to publish inquiry", "inquiry_id", inq.ID, "error", err)
	}
}

// LogSubscriber writes every published inquiry to a logger.
type LogSubscriber struct {
	logger *slog.Logger
}

// NewLogSubscriber creates a subscriber writing to logger, or to the default
// logger when nil.
func NewLogSubscriber(logger *slog.Logger) *LogSubscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSubscriber{logger: logger}
}

// Start subscribes to Submitted until ctx is canceled.
func (s *LogSubscriber) Start(ctx context.Context, sub pubsub.Subscriber) error {
	return Submitted.Subscribe(ctx, sub, s.handle)
}

func (s *LogSubscriber) handle(ctx context.Context, inq domain.Inquiry, msg pubsub.Message) error {
	s.logger.InfoContext(ctx, "Form submitted",
		"inquiry_id", inq.ID.String(),
		"source", msg.Metadata["source"],
		"submitted_at", inq.SubmittedAt,
		slog.Group("form",
			"name", inq.Form.Name,
			"email", inq.Form.Email,
			"company", inq.Form.Company,
			"phone", inq.Form.Phone,
			"message", inq.Form.Message,
		),
	)
	return nil
}
