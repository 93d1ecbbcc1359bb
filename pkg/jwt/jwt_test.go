package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "access-secret-key-0123456789abcdef"
	testRefreshSecret = "refresh-secret-key-0123456789abcde"
)

func newTestManager(t *testing.T, accessTTL, refreshTTL time.Duration) Manager {
	t.Helper()
	m, err := New(Config{
		AccessSecretKey:  testAccessSecret,
		RefreshSecretKey: testRefreshSecret,
		AccessTTL:        accessTTL,
		RefreshTTL:       refreshTTL,
		Issuer:           "digital-api-test",
	})
	require.NoError(t, err)
	return m
}

func testPayload() Payload {
	p := Payload{
		Email: "user@example.com",
		Role:  "editor",
	}
	p.Subject = "8d5e9c1a-6f3b-4a21-9c70-2f5d1f3e8b44"
	return p
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(Config{AccessSecretKey: "short", RefreshSecretKey: testRefreshSecret})
	require.Error(t, err)

	_, err = New(Config{AccessSecretKey: testAccessSecret, RefreshSecretKey: "short"})
	require.Error(t, err)

	// Same secret for both classes defeats the point of having two.
	_, err = New(Config{AccessSecretKey: testAccessSecret, RefreshSecretKey: testAccessSecret})
	require.Error(t, err)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager(t, time.Minute, time.Hour)

	token, err := m.CreateAccessToken(testPayload())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := m.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "8d5e9c1a-6f3b-4a21-9c70-2f5d1f3e8b44", got.Subject)
	assert.Equal(t, "user@example.com", got.Email)
	assert.Equal(t, "editor", got.Role)
	assert.Equal(t, TypeAccess, got.Type)
	assert.NotEmpty(t, got.ID, "jti should be set")
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := newTestManager(t, time.Minute, time.Hour)

	token, err := m.CreateRefreshToken(testPayload())
	require.NoError(t, err)

	got, err := m.VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "8d5e9c1a-6f3b-4a21-9c70-2f5d1f3e8b44", got.Subject)
	assert.Equal(t, TypeRefresh, got.Type)
}

func TestExpiredTokenRejected(t *testing.T) {
	// Negative TTL issues a token that is already past its expiry.
	m := newTestManager(t, -time.Minute, -time.Minute)

	token, err := m.CreateAccessToken(testPayload())
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenClassesAreNotInterchangeable(t *testing.T) {
	m := newTestManager(t, time.Minute, time.Hour)

	access, err := m.CreateAccessToken(testPayload())
	require.NoError(t, err)
	refresh, err := m.CreateRefreshToken(testPayload())
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(refresh)
	require.ErrorIs(t, err, ErrInvalidToken)
	_, err = m.VerifyRefreshToken(access)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecretRejected(t *testing.T) {
	m := newTestManager(t, time.Minute, time.Hour)

	other, err := New(Config{
		AccessSecretKey:  strings.Repeat("x", MinSecretKeyLen),
		RefreshSecretKey: strings.Repeat("y", MinSecretKeyLen),
	})
	require.NoError(t, err)

	token, err := other.CreateAccessToken(testPayload())
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestMalformedTokenRejected(t *testing.T) {
	m := newTestManager(t, time.Minute, time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c", "eyJhbGciOiJIUzI1NiJ9.."} {
		_, err := m.VerifyAccessToken(token)
		require.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}

	// Tampered payload must fail the signature check.
	token, err := m.CreateAccessToken(testPayload())
	require.NoError(t, err)
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	parts[1] = parts[1][:len(parts[1])-2] + "xx"
	_, err = m.VerifyAccessToken(strings.Join(parts, "."))
	require.ErrorIs(t, err, ErrInvalidToken)
}
