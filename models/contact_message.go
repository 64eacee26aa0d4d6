package models

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// User-facing validation messages for the contact form
const (
	MsgAllFieldsRequired = "All fields are required"
	MsgInvalidEmail      = "Invalid email address"
)

// emailPattern accepts local@domain.tld: no whitespace, one @, a dot after it
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactMessage is a persisted contact form submission
type ContactMessage struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ContactForm represents the submitted contact form fields
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate checks the form and returns the first violation, or nil
func (f *ContactForm) Validate() *ValidationError {
	fields := []struct{ name, value string }{
		{"name", f.Name},
		{"email", f.Email},
		{"message", f.Message},
	}
	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			return &ValidationError{Field: field.name, Message: MsgAllFieldsRequired}
		}
	}

	if !IsValidEmail(f.Email) {
		return &ValidationError{Field: "email", Message: MsgInvalidEmail}
	}

	return nil
}

// ToMessage converts the form into an unsaved ContactMessage
func (f *ContactForm) ToMessage() *ContactMessage {
	return &ContactMessage{
		Name:    f.Name,
		Email:   f.Email,
		Message: f.Message,
	}
}

// IsValidEmail performs basic email validation.
// Any Unicode space rejects the address, not only the ASCII ones \s matches.
func IsValidEmail(email string) bool {
	if strings.IndexFunc(email, unicode.IsSpace) >= 0 {
		return false
	}
	return emailPattern.MatchString(email)
}
