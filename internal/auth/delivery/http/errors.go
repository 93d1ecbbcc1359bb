package http

import (
	"net/http"

	"digital-api/internal/auth"
	"digital-api/pkg/errors"
	"digital-api/pkg/response"
)

var errBadRequest = errors.NewHTTPError(http.StatusBadRequest, "Invalid request body", http.StatusBadRequest)

var errorMapping = response.ErrorMapping{
	auth.ErrInvalidCredentials:  errors.NewHTTPError(http.StatusUnauthorized, "Invalid email or password", http.StatusUnauthorized),
	auth.ErrInvalidRefreshToken: errors.NewHTTPError(http.StatusUnauthorized, "Invalid or expired refresh token", http.StatusUnauthorized),
	auth.ErrEmailTaken:          errors.NewHTTPError(http.StatusConflict, "Email already registered", http.StatusConflict),
	auth.ErrPhoneTaken:          errors.NewHTTPError(http.StatusConflict, "Phone already registered", http.StatusConflict),
	auth.ErrTooManyAttempts:     errors.NewHTTPError(http.StatusTooManyRequests, "Too many login attempts, try again later", http.StatusTooManyRequests),
}
