package contact

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const minMessageLen = 10

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrInvalid is matched by every validation failure.
var ErrInvalid = errors.New("contact: invalid form")

// FieldError is a validation failure for one form field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInvalid
}

// ValidationErrors collects every failing field of a form.
type ValidationErrors []*FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) Is(target error) bool {
	return target == ErrInvalid && len(v) > 0
}

// For returns the error for field, if any.
func (v ValidationErrors) For(field string) (*FieldError, bool) {
	for _, e := range v {
		if e.Field == field {
			return e, true
		}
	}
	return nil, false
}

// Form is the contact form.
type Form struct {
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Subject string `yaml:"subject"`
	Message string `yaml:"message"`
}

// Fields returns the form's fields in display order.
func (f Form) Fields() [][2]string {
	return [][2]string{
		{"name", f.Name},
		{"email", f.Email},
		{"subject", f.Subject},
		{"message", f.Message},
	}
}

// ValidateField checks one field value. The value is trimmed first.
func ValidateField(field, value string) error {
	value = strings.TrimSpace(value)

	var msg string
	switch {
	case value == "":
		msg = fmt.Sprintf("%s is required", capitalize(field))
	case field == "email" && !IsValidEmail(value):
		msg = "Please enter a valid email address"
	case field == "message" && utf8.RuneCountInString(value) < minMessageLen:
		msg = fmt.Sprintf("Message must be at least %d characters long", minMessageLen)
	}

	if msg == "" {
		return nil
	}
	return &FieldError{Field: field, Message: msg}
}

// Validate checks every field and returns ValidationErrors when any fail.
func (f Form) Validate() error {
	var errs ValidationErrors
	for _, kv := range f.Fields() {
		if err := ValidateField(kv[0], kv[1]); err != nil {
			var fe *FieldError
			if errors.As(err, &fe) {
				errs = append(errs, fe)
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Reset clears the form.
func (f *Form) Reset() {
	*f = Form{}
}

func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
