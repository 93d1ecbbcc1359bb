package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"digital-api/internal/model"
	"digital-api/internal/policy"
	"digital-api/pkg/scope"
)

const bearerPrefix = "Bearer "

// authenticate locates a credential on the request and verifies it.
// The Authorization header is the primary channel; the legacy "token"
// cookie is honoured as a fallback for page navigations only.
func (m Middleware) authenticate(c *gin.Context) (model.Scope, error) {
	tokenString := bearerToken(c)
	if tokenString == "" && !policy.IsAPIPath(c.Request.URL.Path) {
		if cookie, err := c.Cookie(m.cookieCfg.LegacyName); err == nil {
			tokenString = cookie
		}
	}
	if tokenString == "" {
		return model.Scope{}, ErrMissingCredential
	}

	payload, err := m.jwtManager.VerifyAccessToken(tokenString)
	if err != nil {
		return model.Scope{}, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}

	sc, err := scope.FromPayload(payload)
	if err != nil {
		return model.Scope{}, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	return sc, nil
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(authHeader[len(bearerPrefix):])
}
