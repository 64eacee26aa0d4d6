package authenticator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestStaticProviderPlaintextPassword(t *testing.T) {
	p, err := NewStaticProvider(Config{Email: "admin@example.com", Password: "s3cret"})
	require.NoError(t, err)
	require.True(t, p.Configured())

	assert.NoError(t, p.Authenticate("admin@example.com", "s3cret"))
	assert.ErrorIs(t, p.Authenticate("admin@example.com", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, p.Authenticate("other@example.com", "s3cret"), ErrInvalidCredentials)
	// Exact, case-sensitive match on both halves
	assert.ErrorIs(t, p.Authenticate("Admin@example.com", "s3cret"), ErrInvalidCredentials)
	assert.ErrorIs(t, p.Authenticate("admin@example.com", "S3CRET"), ErrInvalidCredentials)
	assert.ErrorIs(t, p.Authenticate("", ""), ErrInvalidCredentials)
}

func TestStaticProviderPasswordHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	p, err := NewStaticProvider(Config{Email: "admin@example.com", Password: "ignored", PasswordHash: string(hash)})
	require.NoError(t, err)

	assert.NoError(t, p.Authenticate("admin@example.com", "hunter2"))
	assert.ErrorIs(t, p.Authenticate("admin@example.com", "ignored"), ErrInvalidCredentials)
}

func TestStaticProviderInvalidHash(t *testing.T) {
	_, err := NewStaticProvider(Config{Email: "admin@example.com", PasswordHash: "not-a-bcrypt-hash"})
	assert.Error(t, err)
}

func TestStaticProviderNotConfigured(t *testing.T) {
	configs := []Config{
		{},
		{Email: "admin@example.com"},
		{Password: "s3cret"},
	}

	for _, cfg := range configs {
		p, err := NewStaticProvider(cfg)
		require.NoError(t, err)

		assert.False(t, p.Configured())
		// Empty credentials must not open the dashboard
		assert.ErrorIs(t, p.Authenticate("", ""), ErrNotConfigured)
		assert.ErrorIs(t, p.Authenticate(cfg.Email, cfg.Password), ErrNotConfigured)
	}
}
