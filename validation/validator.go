package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kbukum/gogskit/errors"
)

// Validator collects validation errors.
type Validator struct {
	errors FieldErrors
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the cause attached to invalid-argument errors.
type FieldErrors []FieldError

// Error joins the field messages.
func (fe FieldErrors) Error() string {
	messages := make([]string, len(fe))
	for i, e := range fe {
		messages[i] = e.Field + ": " + e.Message
	}
	return strings.Join(messages, "; ")
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{}
}

// AddError adds a field error.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors.
func (v *Validator) Errors() FieldErrors {
	return v.errors
}

// Validate returns an invalid-argument error if any check failed, nil otherwise.
func (v *Validator) Validate() error {
	if !v.HasErrors() {
		return nil
	}
	return fieldErrorsToError(v.errors)
}

func fieldErrorsToError(fe FieldErrors) *errors.Error {
	return errors.New(errors.ErrCodeInvalidArgument, "invalid argument "+fe.Error()).WithCause(fe)
}

// Required checks that a string is not empty or whitespace.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
	}
	return v
}

// Name checks that value is a non-empty user, organization or team name as
// Gogs accepts it. Such names are used as URI path segments.
func (v *Validator) Name(field, value string) *Validator {
	switch {
	case strings.TrimSpace(value) == "":
		v.AddError(field, "is required")
	case !gogsNamePattern.MatchString(value):
		v.AddError(field, nameMessage)
	}
	return v
}

// MaxLength checks that a string has at most maxLen characters.
func (v *Validator) MaxLength(field, value string, maxLen int) *Validator {
	if utf8.RuneCountInString(value) > maxLen {
		v.AddError(field, fmt.Sprintf("must be at most %d characters", maxLen))
	}
	return v
}

// Positive checks that a number is greater than zero.
func (v *Validator) Positive(field string, value int64) *Validator {
	if value <= 0 {
		v.AddError(field, "must be greater than 0")
	}
	return v
}

// Name validates a single user, organization or team name.
func Name(field, value string) error {
	return New().Name(field, value).Validate()
}
