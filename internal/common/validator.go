package common

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FieldError is a single rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation errors: " + strings.Join(msgs, "; ")
}

// Validator collects field errors in the order they are reported. Only the
// first error per field is kept.
type Validator struct {
	Errors []FieldError
	seen   map[string]struct{}
}

func NewValidator() *Validator {
	return &Validator{seen: make(map[string]struct{})}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

func (v *Validator) AddError(field, message string) {
	if _, ok := v.seen[field]; ok {
		return
	}
	v.seen[field] = struct{}{}
	v.Errors = append(v.Errors, FieldError{Field: field, Message: message})
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// CheckStringLength counts runes, not bytes.
func (v *Validator) CheckStringLength(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

func (v *Validator) ValidationError() error {
	return ValidationError{Errors: v.Errors}
}
