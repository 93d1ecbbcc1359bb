package user

import (
	"digital-api/internal/model"
	"digital-api/pkg/paginator"
)

type Filter struct {
	IDs    []string
	Role   string
	Search string // matches name or email
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type UpdateRoleInput struct {
	ID   string
	Role string
}

type UserOutput struct {
	User model.User
}

type GetUserOutput struct {
	Users     []model.User
	Paginator paginator.Paginator
}
