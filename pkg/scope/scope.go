package scope

import (
	"context"
	"fmt"

	"digital-api/internal/model"
	pkgJWT "digital-api/pkg/jwt"
	"digital-api/pkg/role"
)

// ScopeCtxKey keys the principal stored in a request context.
type ScopeCtxKey struct{}

// FromPayload builds the request principal from verified token claims.
// A role outside the closed set means the token cannot be trusted.
func FromPayload(payload pkgJWT.Payload) (model.Scope, error) {
	r, err := role.Parse(payload.Role)
	if err != nil {
		return model.Scope{}, fmt.Errorf("scope: %w", err)
	}
	if payload.Subject == "" {
		return model.Scope{}, fmt.Errorf("scope: missing subject claim")
	}
	return model.Scope{
		UserID: payload.Subject,
		Email:  payload.Email,
		Role:   r,
	}, nil
}

// SetScopeToContext attaches the principal to ctx.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, ScopeCtxKey{}, sc)
}

// GetScopeFromContext returns the principal from ctx.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(ScopeCtxKey{}).(model.Scope)
	return sc, ok
}

// GetUserIDFromContext returns the principal's user ID from ctx.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	sc, ok := GetScopeFromContext(ctx)
	if !ok {
		return "", false
	}
	return sc.UserID, true
}
