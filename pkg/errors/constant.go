package errors

import "net/http"

const (
	// StatusUnauthorized is the HTTP status for a missing or bad credential.
	StatusUnauthorized = http.StatusUnauthorized // 401
	// StatusForbidden is the HTTP status for an authenticated but
	// insufficiently privileged request.
	StatusForbidden = http.StatusForbidden // 403
)

const (
	// MessageUnauthorized is the default message for 401.
	MessageUnauthorized = "Unauthorized"
	// MessageForbidden is the default message for 403. Deliberately generic:
	// it never names the role or permission that would have sufficed.
	MessageForbidden = "Insufficient permissions"
)
