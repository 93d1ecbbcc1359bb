package usecase

import (
	"digital-api/internal/user"
	"digital-api/internal/user/repository"
	pkgLog "digital-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) user.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
