package usecasecontract

// IValidator validates user-supplied input at the usecase boundary.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}
