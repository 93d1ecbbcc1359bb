package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CreateAccessToken signs payload as a short-lived access token with HS256.
func (m *implManager) CreateAccessToken(payload Payload) (string, error) {
	return m.create(payload, TypeAccess, m.cfg.AccessSecretKey, m.cfg.AccessTTL)
}

// CreateRefreshToken signs payload as a long-lived refresh token with HS256.
func (m *implManager) CreateRefreshToken(payload Payload) (string, error) {
	return m.create(payload, TypeRefresh, m.cfg.RefreshSecretKey, m.cfg.RefreshTTL)
}

// VerifyAccessToken verifies an access token against the access secret.
func (m *implManager) VerifyAccessToken(token string) (Payload, error) {
	return m.verify(token, TypeAccess, m.cfg.AccessSecretKey)
}

// VerifyRefreshToken verifies a refresh token against the refresh secret.
func (m *implManager) VerifyRefreshToken(token string) (Payload, error) {
	return m.verify(token, TypeRefresh, m.cfg.RefreshSecretKey)
}

func (m *implManager) create(payload Payload, tokenType, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	payload.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    m.cfg.Issuer,
		Subject:   payload.Subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		NotBefore: jwt.NewNumericDate(now),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.New().String(),
	}
	payload.Type = tokenType

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *implManager) verify(token, tokenType, secret string) (Payload, error) {
	if token == "" {
		return Payload{}, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidToken, t.Header["alg"])
		}
		return []byte(secret), nil
	}

	// Expiry and not-before are enforced here by the parser, not by callers.
	jwtToken, err := jwt.ParseWithClaims(token, &Payload{}, keyFunc,
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !jwtToken.Valid {
		return Payload{}, fmt.Errorf("%w: token is not valid", ErrInvalidToken)
	}

	payload, ok := jwtToken.Claims.(*Payload)
	if !ok {
		return Payload{}, fmt.Errorf("%w: failed to parse claims", ErrInvalidToken)
	}
	if payload.Type != tokenType {
		return Payload{}, fmt.Errorf("%w: token type %q, want %q", ErrInvalidToken, payload.Type, tokenType)
	}
	return *payload, nil
}
