package authenticator

import (
	"errors"
)

var (
	// ErrInvalidCredentials is returned for any email/password mismatch
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotConfigured is returned when no admin credential was configured
	ErrNotConfigured = errors.New("admin credential not configured")
)

// Config holds the admin credential as read from configuration.
// PasswordHash wins over Password when both are set.
type Config struct {
	Email        string
	Password     string
	PasswordHash string
}

// Provider checks a submitted email/password pair
type Provider interface {
	// Authenticate returns nil when the pair matches the admin credential
	Authenticate(email, password string) error
	// Configured reports whether logging in is possible at all
	Configured() bool
}
