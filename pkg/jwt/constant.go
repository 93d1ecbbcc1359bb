package jwt

import "time"

// Token classes. The type claim is verified on parse so one class can never
// stand in for the other.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

const (
	// MinSecretKeyLen is the minimum accepted secret length per token class.
	MinSecretKeyLen = 32

	// DefaultAccessTTL is the access token lifetime when none is configured.
	DefaultAccessTTL = 15 * time.Minute
	// DefaultRefreshTTL is the refresh token lifetime when none is configured.
	DefaultRefreshTTL = 7 * 24 * time.Hour
)
