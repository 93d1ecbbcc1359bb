package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"digital-api/internal/model"
	"digital-api/internal/user/repository"
	"digital-api/pkg/paginator"
	postgresPkg "digital-api/pkg/postgre"
)

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.User, error) {
	now := r.clock()
	usr := opts.User
	usr.CreatedAt = now
	usr.UpdatedAt = now

	query := fmt.Sprintf(`INSERT INTO users (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`, userColumns)

	_, err := r.db.ExecContext(ctx, query,
		usr.ID, usr.Name, usr.Email, usr.Phone, usr.PasswordHash,
		usr.Role, usr.IsVerified, usr.IsActive, usr.CreatedAt, usr.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Create: %v", err)
		return model.User{}, err
	}

	return usr, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.User, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		return model.User{}, repository.ErrNotFound
	}

	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)

	usr, err := r.scanOne(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.Detail: %v", err)
		return model.User{}, err
	}

	return usr, nil
}

func (r *implRepository) GetOne(ctx context.Context, sc model.Scope, opts repository.GetOneOptions) (model.User, error) {
	var (
		column string
		value  string
	)
	switch {
	case opts.ID != "":
		if err := postgresPkg.IsUUID(opts.ID); err != nil {
			return model.User{}, repository.ErrNotFound
		}
		column, value = "id", opts.ID
	case opts.Email != "":
		column, value = "email", opts.Email
	case opts.Phone != "":
		column, value = "phone", opts.Phone
	default:
		return model.User{}, repository.ErrNotFound
	}

	query := fmt.Sprintf("SELECT %s FROM users WHERE %s = $1", userColumns, column)

	usr, err := r.scanOne(r.db.QueryRowContext(ctx, query, value))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.GetOne: %v", err)
		return model.User{}, err
	}

	return usr, nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.User, paginator.Paginator, error) {
	where, args := buildWhere(opts.Filter)

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM users %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	pq := opts.PaginateQuery
	pq.Adjust()

	query := fmt.Sprintf(`SELECT %s FROM users %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, userColumns, where, len(args)+1, len(args)+2)
	args = append(args, pq.Limit, pq.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Get.Query: %v", err)
		return nil, paginator.Paginator{}, err
	}
	defer rows.Close()

	var usrs []model.User
	for rows.Next() {
		usr, scanErr := r.scanOne(rows)
		if scanErr != nil {
			r.l.Errorf(ctx, "internal.user.repository.postgres.Get.Scan: %v", scanErr)
			return nil, paginator.Paginator{}, scanErr
		}
		usrs = append(usrs, usr)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Get.Rows: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return usrs, paginator.Paginator{
		Total:       total,
		Count:       int64(len(usrs)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}, nil
}

func (r *implRepository) UpdateRole(ctx context.Context, sc model.Scope, opts repository.UpdateRoleOptions) (model.User, error) {
	if err := postgresPkg.IsUUID(opts.ID); err != nil {
		return model.User{}, repository.ErrNotFound
	}

	query := fmt.Sprintf(`UPDATE users SET role = $1, updated_at = $2 WHERE id = $3
		RETURNING %s`, userColumns)

	usr, err := r.scanOne(r.db.QueryRowContext(ctx, query, opts.Role, r.clock(), opts.ID))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.UpdateRole: %v", err)
		return model.User{}, err
	}

	return usr, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func (r *implRepository) scanOne(s scanner) (model.User, error) {
	var usr model.User
	err := s.Scan(
		&usr.ID, &usr.Name, &usr.Email, &usr.Phone, &usr.PasswordHash,
		&usr.Role, &usr.IsVerified, &usr.IsActive, &usr.CreatedAt, &usr.UpdatedAt,
	)
	return usr, err
}
