package authenticator

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// StaticProvider authenticates against a single admin credential fixed at startup
type StaticProvider struct {
	email        []byte
	passwordHash []byte
}

// NewStaticProvider builds a provider from cfg. A plaintext password is
// hashed once here so that no plaintext stays in memory past startup.
// An empty email or password yields a provider that rejects every login.
func NewStaticProvider(cfg Config) (*StaticProvider, error) {
	if cfg.Email == "" {
		return &StaticProvider{}, nil
	}

	var hash []byte
	switch {
	case cfg.PasswordHash != "":
		if _, err := bcrypt.Cost([]byte(cfg.PasswordHash)); err != nil {
			return nil, fmt.Errorf("invalid admin password hash: %w", err)
		}
		hash = []byte(cfg.PasswordHash)
	case cfg.Password != "":
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
	default:
		return &StaticProvider{}, nil
	}

	return &StaticProvider{
		email:        []byte(cfg.Email),
		passwordHash: hash,
	}, nil
}

// Configured reports whether an admin credential is present
func (p *StaticProvider) Configured() bool {
	return len(p.email) > 0 && len(p.passwordHash) > 0
}

// Authenticate compares the email exactly (case-sensitive) and the password against the bcrypt hash
func (p *StaticProvider) Authenticate(email, password string) error {
	if !p.Configured() {
		return ErrNotConfigured
	}

	emailMatch := subtle.ConstantTimeCompare([]byte(email), p.email) == 1
	// Always run bcrypt so a wrong email costs the same as a wrong password
	passwordErr := bcrypt.CompareHashAndPassword(p.passwordHash, []byte(password))

	if !emailMatch || passwordErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}
