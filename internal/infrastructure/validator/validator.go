package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

// AppValidator implements the usecasecontract.IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the
// usecasecontract.IValidator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	return &AppValidator{validate: v}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidatePasswordStrength checks if the password meets the minimum length.
func (av *AppValidator) ValidatePasswordStrength(password string) error {
	if len(password) < 7 {
		return fmt.Errorf("password must be at least 7 characters long")
	}
	return nil
}
