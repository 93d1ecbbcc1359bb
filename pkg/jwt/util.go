package jwt

import "fmt"

func validateConfig(cfg *Config) error {
	if len(cfg.AccessSecretKey) < MinSecretKeyLen {
		return fmt.Errorf("jwt: access secret key must be at least %d characters, got %d",
			MinSecretKeyLen, len(cfg.AccessSecretKey))
	}
	if len(cfg.RefreshSecretKey) < MinSecretKeyLen {
		return fmt.Errorf("jwt: refresh secret key must be at least %d characters, got %d",
			MinSecretKeyLen, len(cfg.RefreshSecretKey))
	}
	if cfg.AccessSecretKey == cfg.RefreshSecretKey {
		return fmt.Errorf("jwt: access and refresh secret keys must differ")
	}
	if cfg.AccessTTL == 0 {
		cfg.AccessTTL = DefaultAccessTTL
	}
	if cfg.RefreshTTL == 0 {
		cfg.RefreshTTL = DefaultRefreshTTL
	}
	return nil
}
