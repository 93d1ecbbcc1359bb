package usecase

import (
	"time"

	"digital-api/internal/auth"
	"digital-api/internal/auth/repository"
	userRepo "digital-api/internal/user/repository"
	pkgJWT "digital-api/pkg/jwt"
	pkgLog "digital-api/pkg/log"
)

// Config carries the token lifetimes the use case needs for persistence.
type Config struct {
	RefreshTTL time.Duration
}

type usecase struct {
	l         pkgLog.Logger
	cfg       Config
	userRepo  userRepo.Repository
	tokenRepo repository.TokenRepository
	limiter   repository.LoginLimiter
	jwtMgr    pkgJWT.Manager
}

func New(
	l pkgLog.Logger,
	cfg Config,
	users userRepo.Repository,
	tokens repository.TokenRepository,
	limiter repository.LoginLimiter,
	jwtMgr pkgJWT.Manager,
) auth.UseCase {
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = pkgJWT.DefaultRefreshTTL
	}
	return &usecase{
		l:         l,
		cfg:       cfg,
		userRepo:  users,
		tokenRepo: tokens,
		limiter:   limiter,
		jwtMgr:    jwtMgr,
	}
}
