package middleware

import (
	"digital-api/config"
	"digital-api/internal/policy"
	pkgJWT "digital-api/pkg/jwt"
	"digital-api/pkg/log"
)

// Middleware bundles the dependencies shared by the request interceptors.
type Middleware struct {
	l          log.Logger
	jwtManager pkgJWT.Manager
	policies   policy.Table
	cookieCfg  config.CookieConfig
}

func New(logger log.Logger, jwtManager pkgJWT.Manager, policies policy.Table, cookieCfg config.CookieConfig) Middleware {
	return Middleware{
		l:          logger,
		jwtManager: jwtManager,
		policies:   policies,
		cookieCfg:  cookieCfg,
	}
}
