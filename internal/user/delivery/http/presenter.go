package http

import (
	"time"

	"digital-api/internal/model"
	"digital-api/internal/user"
	"digital-api/pkg/paginator"
)

// --- Request DTOs ---

type getUsersReq struct {
	IDs    []string `form:"ids"`
	Role   string   `form:"role"`
	Search string   `form:"search"`
	paginator.PaginateQuery
}

func (r getUsersReq) toInput() user.GetInput {
	return user.GetInput{
		Filter: user.Filter{
			IDs:    r.IDs,
			Role:   r.Role,
			Search: r.Search,
		},
		PaginateQuery: r.PaginateQuery,
	}
}

type updateRoleReq struct {
	Role string `json:"role" binding:"required"`
}

// --- Response DTOs ---

type userResp struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"is_verified"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newUserResp(usr model.User) userResp {
	return userResp{
		ID:         usr.ID,
		Name:       usr.Name,
		Email:      usr.Email,
		Phone:      usr.Phone,
		Role:       string(usr.Role),
		IsVerified: usr.IsVerified,
		IsActive:   usr.IsActive,
		CreatedAt:  usr.CreatedAt,
		UpdatedAt:  usr.UpdatedAt,
	}
}

type getUsersResp struct {
	Users     []userResp                  `json:"users"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newGetUsersResp(out user.GetUserOutput) getUsersResp {
	users := make([]userResp, len(out.Users))
	for i, usr := range out.Users {
		users[i] = newUserResp(usr)
	}
	return getUsersResp{
		Users:     users,
		Paginator: out.Paginator.ToResponse(),
	}
}
