package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/nfrund/amantech/internal/domain"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// ContactRequest is the DTO for the contact form POST. It only bounds field
// sizes; which fields are required is the contact component's call.
type ContactRequest struct {
	Name    string `form:"name" validate:"max=200"`
	Email   string `form:"email" validate:"max=320"`
	Company string `form:"company" validate:"max=200"`
	Phone   string `form:"phone" validate:"max=50"`
	Message string `form:"message" validate:"max=5000"`
}

// FormData converts the request to the domain form.
func (r ContactRequest) FormData() domain.FormData {
	return domain.FormData{
		Name:    r.Name,
		Email:   r.Email,
		Company: r.Company,
		Phone:   r.Phone,
		Message: r.Message,
	}
}
