package repository

import (
	"context"

	"digital-api/internal/model"
	"digital-api/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.User, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.User, error)
	GetOne(ctx context.Context, sc model.Scope, opts GetOneOptions) (model.User, error)
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.User, paginator.Paginator, error)
	UpdateRole(ctx context.Context, sc model.Scope, opts UpdateRoleOptions) (model.User, error)
}
