package http

import (
	"github.com/gin-gonic/gin"

	"digital-api/internal/user"
	"digital-api/pkg/response"
	"digital-api/pkg/scope"
)

// Me returns the profile of the authenticated user.
func (h *Handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.DetailMe(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newUserResp(out.User))
}

// Get lists users with filtering and pagination.
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req getUsersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.Get.ShouldBindQuery: %v", err)
		response.HttpError(c, errBadRequest)
		return
	}

	out, err := h.uc.Get(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newGetUsersResp(out))
}

// Detail returns one user by ID.
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newUserResp(out.User))
}

// UpdateRole changes a user's role.
func (h *Handler) UpdateRole(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.UpdateRole.ShouldBindJSON: %v", err)
		response.HttpError(c, errBadRequest)
		return
	}

	out, err := h.uc.UpdateRole(ctx, sc, user.UpdateRoleInput{
		ID:   c.Param("id"),
		Role: req.Role,
	})
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newUserResp(out.User))
}
