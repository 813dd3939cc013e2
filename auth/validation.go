package auth

import (
	"regexp"
	"strings"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FieldError reports a validation failure for a single request field.
// Callers need per-field detail, not one generic message.
type FieldError struct {
	Field   string `json:"param"`
	Message string `json:"msg"`
}

// ValidationErrors is the list of field-level failures for a request.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	messages := make([]string, 0, len(v))
	for _, fe := range v {
		messages = append(messages, fe.Message)
	}
	return strings.Join(messages, "; ")
}

// ValidateRegistration checks a registration request and returns every
// failing field, or nil when the request is valid.
func ValidateRegistration(req RegisterRequest) ValidationErrors {
	var errs ValidationErrors
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	}
	if !emailPattern.MatchString(req.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Please include a valid email"})
	}
	if len(req.Password) < minPasswordLength {
		errs = append(errs, FieldError{Field: "password", Message: "Please enter a password with 6 or more characters"})
	}
	return errs
}

// ValidateLogin checks a login request. Password content is not constrained
// here; whether it matches is decided against the stored hash.
func ValidateLogin(req LoginRequest) ValidationErrors {
	var errs ValidationErrors
	if !emailPattern.MatchString(req.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Please include a valid email"})
	}
	if req.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "Password is required"})
	}
	return errs
}
