package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"digital-api/pkg/errors"
	"digital-api/pkg/response"
)

// healthCheck reports overall service health including its backing stores.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.redis.Ping(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Redis connection failed", http.StatusServiceUnavailable))
		return
	}

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Database connection failed", http.StatusServiceUnavailable))
		return
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  "digital-api",
		"redis":    "connected",
		"database": "connected",
	})
}

// readyCheck reports readiness to serve traffic.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.redis.Ping(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Redis connection not available", http.StatusServiceUnavailable))
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": "digital-api",
	})
}

// liveCheck reports process liveness only.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "digital-api",
	})
}
