// Package session keeps the admin session in a signed cookie. There is no
// server-side store: the HS256 token in the cookie is the whole state.
package session

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// CookieName is the name of the session cookie
	CookieName = "portfolio_session"
	issuer     = "portfolio"
)

var (
	ErrNoSession      = errors.New("no session")
	ErrInvalidSession = errors.New("invalid session")
)

// Claims is the session payload carried in the cookie
type Claims struct {
	Authenticated bool `json:"auth"`
	jwt.RegisteredClaims
}

// Options configures a Manager
type Options struct {
	Secret []byte
	TTL    time.Duration
	Secure bool
}

// Manager issues, reads and clears session cookies
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// NewManager creates a session manager. With an empty secret a random key is
// generated, so sessions do not survive a restart.
func NewManager(opts Options) (*Manager, error) {
	secret := opts.Secret
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
	}

	ttl := opts.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &Manager{
		secret: secret,
		ttl:    ttl,
		secure: opts.Secure,
		now:    time.Now,
	}, nil
}

// Login marks the client authenticated as subject by setting a fresh cookie
func (m *Manager) Login(w http.ResponseWriter, subject string) error {
	now := m.now().UTC()
	claims := Claims{
		Authenticated: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		Expires:  now.Add(m.ttl),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Logout clears the session cookie
func (m *Manager) Logout(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Load reads and verifies the session cookie on r
func (m *Manager) Load(r *http.Request) (*Claims, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSession
	}

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	return claims, nil
}

// IsAuthenticated reports whether r carries a valid authenticated session,
// returning the session subject when it does
func (m *Manager) IsAuthenticated(r *http.Request) (string, bool) {
	claims, err := m.Load(r)
	if err != nil || !claims.Authenticated {
		return "", false
	}
	return claims.Subject, true
}
