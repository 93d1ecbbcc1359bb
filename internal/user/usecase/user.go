package usecase

import (
	"context"

	"digital-api/internal/model"
	"digital-api/internal/user"
	"digital-api/internal/user/repository"
	"digital-api/pkg/role"
)

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (user.UserOutput, error) {
	usr, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Detail: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: usr}, nil
}

func (uc *usecase) DetailMe(ctx context.Context, sc model.Scope) (user.UserOutput, error) {
	usr, err := uc.repo.Detail(ctx, sc, sc.UserID)
	if err != nil {
		if err == repository.ErrNotFound {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.DetailMe: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: usr}, nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip user.GetInput) (user.GetUserOutput, error) {
	opts := repository.GetOptions{
		Filter: repository.Filter{
			IDs:    ip.Filter.IDs,
			Role:   ip.Filter.Role,
			Search: ip.Filter.Search,
		},
		PaginateQuery: ip.PaginateQuery,
	}

	usrs, pag, err := uc.repo.Get(ctx, sc, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Get: %v", err)
		return user.GetUserOutput{}, err
	}

	return user.GetUserOutput{
		Users:     usrs,
		Paginator: pag,
	}, nil
}

func (uc *usecase) UpdateRole(ctx context.Context, sc model.Scope, ip user.UpdateRoleInput) (user.UserOutput, error) {
	// The gate already enforces this at the route; the check is repeated
	// here so the use case stays safe if reached from another entry point.
	if !sc.Can(role.PermManageUsers) {
		return user.UserOutput{}, user.ErrForbidden
	}

	newRole, err := role.Parse(ip.Role)
	if err != nil {
		return user.UserOutput{}, user.ErrInvalidRole
	}

	usr, err := uc.repo.UpdateRole(ctx, sc, repository.UpdateRoleOptions{
		ID:   ip.ID,
		Role: newRole,
	})
	if err != nil {
		if err == repository.ErrNotFound {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.UpdateRole: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: usr}, nil
}
