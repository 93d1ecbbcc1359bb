package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// NewHTTPError returns a new HTTPError with the given code, message, and
// status code. A zero statusCode defaults to http.StatusBadRequest.
func NewHTTPError(code int, message string, statusCode int) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewUnauthorizedHTTPError returns a 401 Unauthorized error.
func NewUnauthorizedHTTPError() *HTTPError {
	return &HTTPError{
		Code:       StatusUnauthorized,
		Message:    MessageUnauthorized,
		StatusCode: StatusUnauthorized,
	}
}

// NewForbiddenHTTPError returns a 403 Forbidden error.
func NewForbiddenHTTPError() *HTTPError {
	return &HTTPError{
		Code:       StatusForbidden,
		Message:    MessageForbidden,
		StatusCode: StatusForbidden,
	}
}

// Error returns the client-safe message.
func (e *HTTPError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error.
func NewValidationError(code int, field string, messages ...string) *ValidationError {
	return &ValidationError{Code: code, Field: field, Messages: messages}
}

// Error returns the error message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, strings.Join(e.Messages, ", "))
}

// NewValidationErrorCollector creates a new validation error collector.
func NewValidationErrorCollector() *ValidationErrorCollector {
	return &ValidationErrorCollector{errors: make([]*ValidationError, 0)}
}

// Add appends err and returns the collector for chaining.
func (c *ValidationErrorCollector) Add(err *ValidationError) *ValidationErrorCollector {
	c.errors = append(c.errors, err)
	return c
}

// HasError returns true if the collector holds any error.
func (c *ValidationErrorCollector) HasError() bool {
	return len(c.errors) > 0
}

// Errors returns the collected errors.
func (c *ValidationErrorCollector) Errors() []*ValidationError {
	return c.errors
}

// Error joins the collected error messages.
func (c *ValidationErrorCollector) Error() string {
	var msgs []string
	for _, err := range c.errors {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, ", ")
}
