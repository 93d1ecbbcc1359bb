package http

import (
	"net/http"

	"digital-api/internal/user"
	"digital-api/pkg/errors"
	"digital-api/pkg/response"
)

var errBadRequest = errors.NewHTTPError(http.StatusBadRequest, "Invalid request", http.StatusBadRequest)

var errorMapping = response.ErrorMapping{
	user.ErrUserNotFound: errors.NewHTTPError(http.StatusNotFound, "User not found", http.StatusNotFound),
	user.ErrInvalidRole:  errors.NewHTTPError(http.StatusBadRequest, "Invalid role", http.StatusBadRequest),
	user.ErrForbidden:    errors.NewForbiddenHTTPError(),
}
