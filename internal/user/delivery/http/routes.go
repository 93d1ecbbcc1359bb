package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the user routes. Authentication and role checks
// happen in the gate before requests reach these handlers.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.GET("/me", h.Me)
		users.GET("", h.Get)
		users.GET("/:id", h.Detail)
		users.PATCH("/:id/role", h.UpdateRole)
	}
}
