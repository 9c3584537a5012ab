package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// User-facing messages shown by the confirmation channel.
const (
	MsgInquiryAccepted = "Thank you for your inquiry! We will contact you shortly."
	MsgInquiryRejected = "Please fill in all required fields."
)

var formValidator = validator.New(validator.WithRequiredStructEnabled())

// FormData is the editable contact form record. Only Name, Email and Message
// are required. Values are taken as typed: whitespace-only input counts as
// present and no format checks are applied.
type FormData struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required"`
	Company string `json:"company" form:"company"`
	Phone   string `json:"phone" form:"phone"`
	Message string `json:"message" form:"message" validate:"required"`
}

// Validate returns a *ValidationError naming every empty required field, in
// form order, or nil.
func (f FormData) Validate() error {
	err := formValidator.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return &ValidationError{Fields: fields}
}

// IsZero reports whether every field is empty.
func (f FormData) IsZero() bool {
	return f == FormData{}
}

// Inquiry is an accepted submission as written to the diagnostic channel.
type Inquiry struct {
	ID          uuid.UUID `json:"id"`
	SubmittedAt time.Time `json:"submitted_at"`
	Form        FormData  `json:"form"`
}

// NewInquiry stamps a form with a fresh id and the given time.
func NewInquiry(form FormData, at time.Time) Inquiry {
	return Inquiry{
		ID:          uuid.New(),
		SubmittedAt: at.UTC(),
		Form:        form,
	}
}
