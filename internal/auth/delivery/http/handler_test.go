package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital-api/config"
	authRedis "digital-api/internal/auth/repository/redis"
	"digital-api/internal/auth/usecase"
	"digital-api/internal/user/repository/inmem"
	pkgJWT "digital-api/pkg/jwt"
	"digital-api/pkg/log"
	pkgRedis "digital-api/pkg/redis"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	redis := pkgRedis.NewWithClient(client)

	jwtMgr, err := pkgJWT.New(pkgJWT.Config{
		AccessSecretKey:  "handler-access-secret-0123456789abcd",
		RefreshSecretKey: "handler-refresh-secret-0123456789abc",
		AccessTTL:        time.Minute,
		RefreshTTL:       time.Hour,
		Issuer:           "digital-api-test",
	})
	require.NoError(t, err)

	logger := log.NewNop()
	uc := usecase.New(
		logger,
		usecase.Config{RefreshTTL: time.Hour},
		inmem.New(),
		authRedis.NewTokenRepository(logger, redis),
		authRedis.NewLoginLimiter(logger, redis, 5, time.Minute),
		jwtMgr,
	)

	h := New(logger, uc, config.CookieConfig{
		Name:       "refreshToken",
		LegacyName: "token",
		Domain:     "",
		Secure:     false,
		SameSite:   "Strict",
	}, 3600)

	r := gin.New()
	h.RegisterRoutes(r.Group("/api"))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func refreshCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "refreshToken" {
			return c
		}
	}
	t.Fatal("refresh cookie not set")
	return nil
}

func signupAlice(t *testing.T, r *gin.Engine) {
	t.Helper()
	w := postJSON(t, r, "/api/auth/signup", gin.H{
		"name":     "Alice",
		"email":    "alice@example.com",
		"phone":    "0900000001",
		"password": "s3cret-password",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestSignup_Validation(t *testing.T) {
	r := newTestServer(t)

	// Missing password.
	w := postJSON(t, r, "/api/auth/signup", gin.H{
		"name":  "Alice",
		"email": "alice@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Short password.
	w = postJSON(t, r, "/api/auth/signup", gin.H{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignup_DuplicateEmailConflict(t *testing.T) {
	r := newTestServer(t)
	signupAlice(t, r)

	w := postJSON(t, r, "/api/auth/signup", gin.H{
		"name":     "Alice 2",
		"email":    "alice@example.com",
		"password": "s3cret-password",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_SetsRefreshCookie(t *testing.T) {
	r := newTestServer(t)
	signupAlice(t, r)

	w := postJSON(t, r, "/api/auth/login", gin.H{
		"email":    "alice@example.com",
		"password": "s3cret-password",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cookie := refreshCookie(t, w)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/api/auth", cookie.Path)

	// The refresh token never appears in the body.
	assert.NotContains(t, w.Body.String(), cookie.Value)
	assert.Contains(t, w.Body.String(), "access_token")
}

func TestLogin_BadPassword(t *testing.T) {
	r := newTestServer(t)
	signupAlice(t, r)

	w := postJSON(t, r, "/api/auth/login", gin.H{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestRefresh_FullFlow(t *testing.T) {
	r := newTestServer(t)
	signupAlice(t, r)

	login := postJSON(t, r, "/api/auth/login", gin.H{
		"email":    "alice@example.com",
		"password": "s3cret-password",
	})
	require.Equal(t, http.StatusOK, login.Code)
	oldCookie := refreshCookie(t, login)

	// Refresh rotates the cookie.
	refreshed := postJSON(t, r, "/api/auth/refresh", nil, oldCookie)
	require.Equal(t, http.StatusOK, refreshed.Code, refreshed.Body.String())
	newCookie := refreshCookie(t, refreshed)
	assert.NotEqual(t, oldCookie.Value, newCookie.Value)

	// Replaying the consumed cookie fails and clears it.
	replay := postJSON(t, r, "/api/auth/refresh", nil, oldCookie)
	assert.Equal(t, http.StatusUnauthorized, replay.Code)
	cleared := refreshCookie(t, replay)
	assert.Empty(t, cleared.Value)

	// The rotated cookie still works.
	again := postJSON(t, r, "/api/auth/refresh", nil, newCookie)
	assert.Equal(t, http.StatusOK, again.Code)
}

func TestRefresh_NoCookie(t *testing.T) {
	r := newTestServer(t)

	w := postJSON(t, r, "/api/auth/refresh", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout(t *testing.T) {
	r := newTestServer(t)
	signupAlice(t, r)

	login := postJSON(t, r, "/api/auth/login", gin.H{
		"email":    "alice@example.com",
		"password": "s3cret-password",
	})
	require.Equal(t, http.StatusOK, login.Code)
	cookie := refreshCookie(t, login)

	logout := postJSON(t, r, "/api/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, logout.Code)
	cleared := refreshCookie(t, logout)
	assert.Empty(t, cleared.Value)
	assert.True(t, cleared.MaxAge < 0)

	// The revoked token no longer refreshes.
	w := postJSON(t, r, "/api/auth/refresh", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_WithoutSession(t *testing.T) {
	r := newTestServer(t)

	w := postJSON(t, r, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
