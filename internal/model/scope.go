package model

import "digital-api/pkg/role"

// Scope is the authenticated principal attached to a request after token
// verification. It is rebuilt per request and never persisted.
type Scope struct {
	UserID string    `json:"user_id"`
	Email  string    `json:"email"`
	Role   role.Role `json:"role"`
}

// IsAdmin reports whether the scope carries the admin role.
func (s Scope) IsAdmin() bool {
	return s.Role == role.Admin
}

// Can reports whether the scope's role holds the given permission.
func (s Scope) Can(p role.Permission) bool {
	return role.Has(s.Role, p)
}
