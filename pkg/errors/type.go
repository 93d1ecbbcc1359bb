package errors

// HTTPError represents an HTTP error with a status code and a client-safe
// message. Internal diagnostic detail never travels in it.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// ValidationError is an error with a field and a list of messages.
type ValidationError struct {
	Code     int      `json:"code"`
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// ValidationErrorCollector collects multiple validation errors.
type ValidationErrorCollector struct {
	errors []*ValidationError
}
