package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds signing secrets and lifetimes for both token classes.
// Secrets are independent so a leaked refresh secret cannot forge access
// tokens and vice versa.
type Config struct {
	AccessSecretKey  string
	RefreshSecretKey string
	AccessTTL        time.Duration
	RefreshTTL       time.Duration
	Issuer           string
}

// Payload represents the claims carried by both token classes.
// The registered subject claim is the user ID.
type Payload struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
	Type  string `json:"type"`
}

// implManager implements Manager.
type implManager struct {
	cfg Config
}
