package response

import "digital-api/pkg/errors"

// Resp is the JSON envelope for every response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping maps domain sentinel errors to HTTP errors at the delivery
// layer.
type ErrorMapping map[error]*errors.HTTPError
