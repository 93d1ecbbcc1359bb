package inmem

import (
	"context"
	"sort"
	"strings"
	"sync"

	"digital-api/internal/model"
	"digital-api/internal/user/repository"
	"digital-api/pkg/paginator"
)

// implRepository is an in-memory Repository. It backs tests and local
// development where a real database is unavailable.
type implRepository struct {
	mu    sync.RWMutex
	users map[string]model.User
}

var _ repository.Repository = &implRepository{}

func New() *implRepository {
	return &implRepository{
		users: make(map[string]model.User),
	}
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[opts.User.ID] = opts.User
	return opts.User, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	usr, ok := r.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return usr, nil
}

func (r *implRepository) GetOne(ctx context.Context, sc model.Scope, opts repository.GetOneOptions) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if opts.ID != "" {
		usr, ok := r.users[opts.ID]
		if !ok {
			return model.User{}, repository.ErrNotFound
		}
		return usr, nil
	}

	for _, usr := range r.users {
		if (opts.Email != "" && usr.Email == opts.Email) ||
			(opts.Phone != "" && usr.Phone == opts.Phone) {
			return usr, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.User, paginator.Paginator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []model.User
	for _, usr := range r.users {
		if !matches(usr, opts.Filter) {
			continue
		}
		matched = append(matched, usr)
	}

	// Newest first, matching the SQL repository ordering.
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	page, pag := paginator.PaginateSlice(matched, opts.PaginateQuery)
	return page, pag, nil
}

func (r *implRepository) UpdateRole(ctx context.Context, sc model.Scope, opts repository.UpdateRoleOptions) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	usr, ok := r.users[opts.ID]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}

	usr.Role = opts.Role
	r.users[opts.ID] = usr
	return usr, nil
}

func matches(usr model.User, filter repository.Filter) bool {
	if len(filter.IDs) > 0 {
		found := false
		for _, id := range filter.IDs {
			if usr.ID == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if filter.Role != "" && string(usr.Role) != filter.Role {
		return false
	}

	if filter.Search != "" {
		s := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(usr.Name), s) &&
			!strings.Contains(strings.ToLower(usr.Email), s) {
			return false
		}
	}

	return true
}
