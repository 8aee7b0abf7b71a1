package contract

// IValidator validates values at the application boundary.
type IValidator interface {
	// ValidateEmail checks that the email is present and well-formed.
	ValidateEmail(email string) error
}
