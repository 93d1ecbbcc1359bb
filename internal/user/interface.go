package user

import (
	"context"

	"digital-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Detail(ctx context.Context, sc model.Scope, id string) (UserOutput, error)
	DetailMe(ctx context.Context, sc model.Scope) (UserOutput, error)
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetUserOutput, error)
	UpdateRole(ctx context.Context, sc model.Scope, ip UpdateRoleInput) (UserOutput, error)
}
