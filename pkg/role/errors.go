package role

import "errors"

var (
	// ErrUnknownRole is returned by Parse for a string outside the role set.
	ErrUnknownRole = errors.New("role: unknown role")
)
