package http

import (
	"digital-api/config"
	"digital-api/internal/auth"
	"digital-api/pkg/log"
)

type Handler struct {
	l         log.Logger
	uc        auth.UseCase
	cookieCfg config.CookieConfig
	// refreshMaxAge is the refresh cookie lifetime in seconds.
	refreshMaxAge int
}

func New(l log.Logger, uc auth.UseCase, cookieCfg config.CookieConfig, refreshMaxAge int) *Handler {
	return &Handler{
		l:             l,
		uc:            uc,
		cookieCfg:     cookieCfg,
		refreshMaxAge: refreshMaxAge,
	}
}
