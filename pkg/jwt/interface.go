package jwt

// Manager issues and verifies the two signed token classes used by the
// service. Implementations are safe for concurrent use.
type Manager interface {
	// CreateAccessToken signs a short-lived access token for the payload.
	CreateAccessToken(payload Payload) (string, error)
	// CreateRefreshToken signs a long-lived refresh token for the payload.
	CreateRefreshToken(payload Payload) (string, error)
	// VerifyAccessToken parses and verifies an access token.
	// All failures wrap ErrInvalidToken; it never panics.
	VerifyAccessToken(token string) (Payload, error)
	// VerifyRefreshToken parses and verifies a refresh token.
	VerifyRefreshToken(token string) (Payload, error)
}

// New creates a Manager from cfg, applying default lifetimes where unset.
func New(cfg Config) (Manager, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &implManager{cfg: cfg}, nil
}
