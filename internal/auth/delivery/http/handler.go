package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"digital-api/internal/auth"
	"digital-api/pkg/response"
)

const refreshCookiePath = "/api/auth"

// Signup registers a new account. New accounts start as viewers.
func (h *Handler) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.auth.delivery.http.Signup.ShouldBindJSON: %v", err)
		response.HttpError(c, errBadRequest)
		return
	}

	out, err := h.uc.Signup(ctx, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newUserResp(out.User))
}

// Login verifies credentials and returns an access token. The refresh
// token is set as an HttpOnly cookie and never appears in the body.
func (h *Handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.auth.delivery.http.Login.ShouldBindJSON: %v", err)
		response.HttpError(c, errBadRequest)
		return
	}

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	h.setRefreshCookie(c, out.RefreshToken)
	response.OK(c, newTokenResp(out))
}

// Refresh exchanges the refresh cookie for a new token pair. The old
// refresh token is consumed; replaying it fails.
func (h *Handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	refreshToken, err := c.Cookie(h.cookieCfg.Name)
	if err != nil || refreshToken == "" {
		response.ErrorWithMap(c, auth.ErrInvalidRefreshToken, errorMapping)
		return
	}

	out, err := h.uc.Refresh(ctx, auth.RefreshInput{RefreshToken: refreshToken})
	if err != nil {
		h.clearRefreshCookie(c)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	h.setRefreshCookie(c, out.RefreshToken)
	response.OK(c, newTokenResp(out))
}

// Logout revokes the active refresh token and clears the cookie.
// It succeeds even without a valid session.
func (h *Handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	refreshToken, _ := c.Cookie(h.cookieCfg.Name)
	if err := h.uc.Logout(ctx, auth.LogoutInput{RefreshToken: refreshToken}); err != nil {
		response.Error(c, err)
		return
	}

	h.clearRefreshCookie(c)
	response.OK(c, nil)
}

func (h *Handler) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(parseSameSite(h.cookieCfg.SameSite))
	c.SetCookie(h.cookieCfg.Name, token, h.refreshMaxAge, refreshCookiePath,
		h.cookieCfg.Domain, h.cookieCfg.Secure, true)
}

func (h *Handler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(parseSameSite(h.cookieCfg.SameSite))
	c.SetCookie(h.cookieCfg.Name, "", -1, refreshCookiePath,
		h.cookieCfg.Domain, h.cookieCfg.Secure, true)
}

func parseSameSite(s string) http.SameSite {
	switch s {
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}
