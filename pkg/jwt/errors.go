package jwt

import "errors"

var (
	// ErrInvalidToken is returned when a token is malformed, carries a bad
	// signature, is expired, or belongs to the wrong token class.
	ErrInvalidToken = errors.New("invalid token")
)
