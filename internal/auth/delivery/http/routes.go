package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the auth routes. They stay outside the policy
// table: login and signup have no credential yet, and refresh and logout
// authenticate via the refresh cookie.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)
	}
}
