package middleware

import (
	"github.com/gin-gonic/gin"

	"digital-api/pkg/log"
	"digital-api/pkg/response"
)

// Recovery turns panics into a generic 500 response and logs the cause.
func Recovery(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err)
				c.Abort()
			}
		}()
		c.Next()
	}
}
