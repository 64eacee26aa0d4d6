package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(Options{Secret: []byte("test-secret"), TTL: time.Hour})
	require.NoError(t, err)
	return m
}

// requestWithCookies replays the cookies set on rec onto a new request
func requestWithCookies(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestLoginThenLoad(t *testing.T) {
	m := newTestManager(t)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Login(rec, "admin@example.com"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	subject, ok := m.IsAuthenticated(requestWithCookies(rec))
	assert.True(t, ok)
	assert.Equal(t, "admin@example.com", subject)
}

func TestLoadWithoutCookie(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, ErrNoSession)

	_, ok := m.IsAuthenticated(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}

func TestLogoutClearsCookie(t *testing.T) {
	m := newTestManager(t)

	rec := httptest.NewRecorder()
	m.Logout(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)

	_, ok := m.IsAuthenticated(requestWithCookies(rec))
	assert.False(t, ok)
}

func TestLoadRejectsForeignSignature(t *testing.T) {
	issuerMgr := newTestManager(t)
	other, err := NewManager(Options{Secret: []byte("another-secret")})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, issuerMgr.Login(rec, "admin@example.com"))

	_, err = other.Load(requestWithCookies(rec))
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestLoadRejectsTamperedToken(t *testing.T) {
	m := newTestManager(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not.a.token"})

	_, err := m.Load(req)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestLoadRejectsExpiredSession(t *testing.T) {
	m := newTestManager(t)
	issued := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return issued }

	rec := httptest.NewRecorder()
	require.NoError(t, m.Login(rec, "admin@example.com"))

	m.now = time.Now
	_, err := m.Load(requestWithCookies(rec))
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestUnauthenticatedClaimsAreAnonymous(t *testing.T) {
	m := newTestManager(t)

	now := time.Now()
	claims := Claims{
		Authenticated: false,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "admin@example.com",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})

	_, ok := m.IsAuthenticated(req)
	assert.False(t, ok)
}

func TestRandomSecretWhenUnset(t *testing.T) {
	a, err := NewManager(Options{})
	require.NoError(t, err)
	b, err := NewManager(Options{})
	require.NoError(t, err)

	assert.Len(t, a.secret, 32)
	assert.NotEqual(t, a.secret, b.secret)
	assert.Equal(t, time.Hour, a.ttl)
}
