package live

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nfrund/amantech/internal/domain"
)

// ErrNoTrigger is returned for a frame that does not name the element that
// sent it.
var ErrNoTrigger = errors.New("message has no HX-Trigger")

// Inbound is one frame sent by the htmx ws extension. Form values, when the
// sender is a form, sit next to HEADERS at the top level.
type Inbound struct {
	Trigger string
	Form    domain.FormData
}

type inboundHeaders struct {
	Headers struct {
		Trigger *string `json:"HX-Trigger"`
	} `json:"HEADERS"`
}

// ParseInbound decodes a frame.
func ParseInbound(data []byte) (Inbound, error) {
	var h inboundHeaders
	if err := json.Unmarshal(data, &h); err != nil {
		return Inbound{}, fmt.Errorf("failed to decode live message: %w", err)
	}
	if h.Headers.Trigger == nil || *h.Headers.Trigger == "" {
		return Inbound{}, ErrNoTrigger
	}

	in := Inbound{Trigger: *h.Headers.Trigger}
	// Non-form senders carry no fields and decode to an empty form.
	if err := json.Unmarshal(data, &in.Form); err != nil {
		return Inbound{}, fmt.Errorf("failed to decode form values: %w", err)
	}
	return in, nil
}
