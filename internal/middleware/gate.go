package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"digital-api/internal/model"
	"digital-api/internal/policy"
	"digital-api/pkg/response"
	"digital-api/pkg/role"
	"digital-api/pkg/scope"
)

// LoginPath is where unauthenticated page navigations are sent.
const LoginPath = "/login"

// Gate intercepts every request and enforces the route policy table.
// Paths without a policy pass through untouched. Each request is classified
// and decided exactly once; on success the principal is attached to the
// request context so handlers never re-verify the token.
func (m Middleware) Gate() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		path := c.Request.URL.Path

		pol, ok := m.policies.Match(path)
		if !ok {
			c.Next()
			return
		}

		sc, err := m.authenticate(c)
		if err != nil {
			// Missing and invalid credentials collapse to one client-visible
			// outcome; the log keeps the distinction.
			m.l.Warnf(ctx, "internal.middleware.Gate: unauthenticated | Path: %s | Reason: %v", path, err)
			m.rejectUnauthenticated(c)
			return
		}

		if !m.authorize(sc, pol) {
			m.l.Warnf(ctx, "internal.middleware.Gate: forbidden | Path: %s | Role: %s", path, sc.Role)
			response.Forbidden(c)
			c.Abort()
			return
		}

		m.l.Debugf(ctx, "internal.middleware.Gate: allowed | Path: %s | Role: %s | User: %s", path, sc.Role, sc.UserID)
		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, sc))
		c.Next()
	}
}

func (m Middleware) authorize(sc model.Scope, pol policy.Policy) bool {
	if len(pol.Permissions) > 0 {
		return role.HasAny(sc.Role, pol.Permissions...)
	}
	return role.MeetsOrExceeds(sc.Role, pol.RequiredRole)
}

func (m Middleware) rejectUnauthenticated(c *gin.Context) {
	if policy.IsAPIPath(c.Request.URL.Path) {
		response.Unauthorized(c)
		c.Abort()
		return
	}
	// A stale legacy cookie would loop the browser through the redirect;
	// drop it before sending the user to login.
	c.SetCookie(m.cookieCfg.LegacyName, "", -1, "/", m.cookieCfg.Domain, m.cookieCfg.Secure, false)
	c.Redirect(http.StatusSeeOther, LoginPath)
	c.Abort()
}
