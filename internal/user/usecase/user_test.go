package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital-api/internal/model"
	"digital-api/internal/user"
	"digital-api/internal/user/repository"
	"digital-api/internal/user/repository/inmem"
	"digital-api/pkg/log"
	"digital-api/pkg/paginator"
	"digital-api/pkg/role"
)

func seedUser(t *testing.T, repo repository.Repository, id string, r role.Role) model.User {
	t.Helper()
	usr, err := repo.Create(context.Background(), model.Scope{}, repository.CreateOptions{
		User: model.User{
			ID:        id,
			Name:      "User " + id,
			Email:     id + "@example.com",
			Role:      r,
			IsActive:  true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	})
	require.NoError(t, err)
	return usr
}

func TestDetailMe(t *testing.T) {
	repo := inmem.New()
	uc := New(log.NewNop(), repo)
	seedUser(t, repo, "u1", role.Viewer)

	out, err := uc.DetailMe(context.Background(), model.Scope{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "u1", out.User.ID)

	_, err = uc.DetailMe(context.Background(), model.Scope{UserID: "missing"})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestGet_FilterByRole(t *testing.T) {
	repo := inmem.New()
	uc := New(log.NewNop(), repo)
	seedUser(t, repo, "u1", role.Viewer)
	seedUser(t, repo, "u2", role.Admin)
	seedUser(t, repo, "u3", role.Viewer)

	out, err := uc.Get(context.Background(), model.Scope{}, user.GetInput{
		Filter: user.Filter{Role: string(role.Viewer)},
	})
	require.NoError(t, err)
	assert.Len(t, out.Users, 2)
	assert.EqualValues(t, 2, out.Paginator.Total)
}

func TestGet_Pagination(t *testing.T) {
	repo := inmem.New()
	uc := New(log.NewNop(), repo)
	for _, id := range []string{"u1", "u2", "u3"} {
		seedUser(t, repo, id, role.Viewer)
	}

	out, err := uc.Get(context.Background(), model.Scope{}, user.GetInput{
		PaginateQuery: paginator.PaginateQuery{Page: 2, Limit: 2},
	})
	require.NoError(t, err)
	assert.Len(t, out.Users, 1)
	assert.EqualValues(t, 3, out.Paginator.Total)
	assert.Equal(t, 2, out.Paginator.CurrentPage)
}

func TestUpdateRole(t *testing.T) {
	repo := inmem.New()
	uc := New(log.NewNop(), repo)
	seedUser(t, repo, "u1", role.Viewer)

	admin := model.Scope{UserID: "admin-1", Role: role.Admin}

	out, err := uc.UpdateRole(context.Background(), admin, user.UpdateRoleInput{
		ID:   "u1",
		Role: "editor",
	})
	require.NoError(t, err)
	assert.Equal(t, role.Editor, out.User.Role)

	_, err = uc.UpdateRole(context.Background(), admin, user.UpdateRoleInput{
		ID:   "u1",
		Role: "superuser",
	})
	assert.ErrorIs(t, err, user.ErrInvalidRole)

	_, err = uc.UpdateRole(context.Background(), admin, user.UpdateRoleInput{
		ID:   "missing",
		Role: "admin",
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	// A caller without manage_users never reaches the store.
	_, err = uc.UpdateRole(context.Background(), model.Scope{UserID: "v-1", Role: role.Viewer}, user.UpdateRoleInput{
		ID:   "u1",
		Role: "admin",
	})
	assert.ErrorIs(t, err, user.ErrForbidden)
}
