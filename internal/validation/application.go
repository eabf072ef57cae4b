package validation

import (
	"errors"
	"net/mail"
	"strings"
)

// FieldError reports a single violated rule on a named form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ApplicationInput carries the raw submitted fields. Validate trims the
// required fields in place so callers persist the normalized values.
type ApplicationInput struct {
	Name       string
	Email      string
	Phone      string
	ClassLevel string
	Notes      string
}

// ValidateApplication checks every rule and reports all violations
// together rather than stopping at the first one.
// Phone is intentionally loose: a trimmed length check only, to avoid
// rejecting valid numbers from other locales.
func ValidateApplication(in *ApplicationInput) []FieldError {
	var errs []FieldError

	in.Name = strings.TrimSpace(in.Name)
	if len(in.Name) < 2 {
		errs = append(errs, FieldError{Field: "name", Message: "Name must be at least 2 characters"})
	}

	if err := validEmail(in.Email); err != nil {
		errs = append(errs, FieldError{Field: "email", Message: "Invalid email"})
	}

	in.Phone = strings.TrimSpace(in.Phone)
	if len(in.Phone) < 7 {
		errs = append(errs, FieldError{Field: "phone", Message: "Invalid phone number"})
	}

	return errs
}

var errInvalidEmail = errors.New("invalid email address")

// validEmail parses with net/mail, which follows RFC 5322.
func validEmail(email string) error {
	// RFC 5321: 254 is the longest deliverable address
	if email == "" || len(email) > 254 {
		return errInvalidEmail
	}
	_, err := mail.ParseAddress(email)
	return err
}
