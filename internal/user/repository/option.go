package repository

import (
	"digital-api/internal/model"
	"digital-api/pkg/paginator"
	"digital-api/pkg/role"
)

// Filter contains filtering options for user queries.
type Filter struct {
	IDs    []string
	Role   string
	Search string // For searching in name or email
}

// CreateOptions contains options for creating a user.
type CreateOptions struct {
	User model.User
}

// GetOneOptions contains options for getting a single user.
// Exactly one field should be set.
type GetOneOptions struct {
	ID    string
	Email string
	Phone string
}

// GetOptions contains options for paginated user listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// UpdateRoleOptions contains options for changing a user's role.
type UpdateRoleOptions struct {
	ID   string
	Role role.Role
}
