package usecase

import (
	"context"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"digital-api/internal/auth"
	"digital-api/internal/auth/repository"
	"digital-api/internal/model"
	userRepo "digital-api/internal/user/repository"
	"digital-api/pkg/encrypter"
	pkgJWT "digital-api/pkg/jwt"
	postgresPkg "digital-api/pkg/postgre"
	"digital-api/pkg/role"
)

func (uc *usecase) Signup(ctx context.Context, ip auth.SignupInput) (auth.SignupOutput, error) {
	if err := uc.checkTaken(ctx, userRepo.GetOneOptions{Email: ip.Email}, auth.ErrEmailTaken); err != nil {
		return auth.SignupOutput{}, err
	}
	if ip.Phone != "" {
		if err := uc.checkTaken(ctx, userRepo.GetOneOptions{Phone: ip.Phone}, auth.ErrPhoneTaken); err != nil {
			return auth.SignupOutput{}, err
		}
	}

	hash, err := encrypter.HashPassword(ip.Password)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Signup.HashPassword: %v", err)
		return auth.SignupOutput{}, err
	}

	usr, err := uc.userRepo.Create(ctx, model.Scope{}, userRepo.CreateOptions{
		User: model.User{
			ID:           postgresPkg.NewUUID(),
			Name:         ip.Name,
			Email:        ip.Email,
			Phone:        ip.Phone,
			PasswordHash: hash,
			Role:         role.Viewer,
			IsVerified:   false,
			IsActive:     true,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Signup.Create: %v", err)
		return auth.SignupOutput{}, err
	}

	return auth.SignupOutput{User: usr}, nil
}

func (uc *usecase) Login(ctx context.Context, ip auth.LoginInput) (auth.TokenPairOutput, error) {
	allowed, err := uc.limiter.Allow(ctx, ip.Email)
	if err != nil {
		// A broken limiter must not lock everyone out.
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.Allow: %v", err)
	} else if !allowed {
		uc.l.Warnf(ctx, "internal.auth.usecase.Login: throttled | Email: %s", ip.Email)
		return auth.TokenPairOutput{}, auth.ErrTooManyAttempts
	}

	usr, err := uc.userRepo.GetOne(ctx, model.Scope{}, userRepo.GetOneOptions{Email: ip.Email})
	if err != nil {
		if err != userRepo.ErrNotFound {
			uc.l.Errorf(ctx, "internal.auth.usecase.Login.GetOne: %v", err)
		}
		return auth.TokenPairOutput{}, auth.ErrInvalidCredentials
	}

	if !usr.IsActive {
		uc.l.Warnf(ctx, "internal.auth.usecase.Login: inactive account | User: %s", usr.ID)
		return auth.TokenPairOutput{}, auth.ErrInvalidCredentials
	}

	if !encrypter.CheckPasswordHash(ip.Password, usr.PasswordHash) {
		if hitErr := uc.limiter.Hit(ctx, ip.Email); hitErr != nil {
			uc.l.Errorf(ctx, "internal.auth.usecase.Login.Hit: %v", hitErr)
		}
		return auth.TokenPairOutput{}, auth.ErrInvalidCredentials
	}

	if resetErr := uc.limiter.Reset(ctx, ip.Email); resetErr != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.Reset: %v", resetErr)
	}

	access, refresh, err := uc.issuePair(ctx, usr)
	if err != nil {
		return auth.TokenPairOutput{}, err
	}

	if err := uc.tokenRepo.Save(ctx, usr.ID, refresh, uc.cfg.RefreshTTL); err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.Save: %v", err)
		return auth.TokenPairOutput{}, err
	}

	return auth.TokenPairOutput{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         usr,
	}, nil
}

func (uc *usecase) Refresh(ctx context.Context, ip auth.RefreshInput) (auth.TokenPairOutput, error) {
	payload, err := uc.jwtMgr.VerifyRefreshToken(ip.RefreshToken)
	if err != nil {
		return auth.TokenPairOutput{}, auth.ErrInvalidRefreshToken
	}

	// Role is re-read from storage so a demotion applies on the next
	// refresh, not a week later when the old claims expire.
	usr, err := uc.userRepo.GetOne(ctx, model.Scope{}, userRepo.GetOneOptions{ID: payload.Subject})
	if err != nil {
		if err != userRepo.ErrNotFound {
			uc.l.Errorf(ctx, "internal.auth.usecase.Refresh.GetOne: %v", err)
		}
		return auth.TokenPairOutput{}, auth.ErrInvalidRefreshToken
	}

	if !usr.IsActive {
		uc.l.Warnf(ctx, "internal.auth.usecase.Refresh: inactive account | User: %s", usr.ID)
		return auth.TokenPairOutput{}, auth.ErrInvalidRefreshToken
	}

	access, refresh, err := uc.issuePair(ctx, usr)
	if err != nil {
		return auth.TokenPairOutput{}, err
	}

	if err := uc.tokenRepo.Rotate(ctx, usr.ID, ip.RefreshToken, refresh, uc.cfg.RefreshTTL); err != nil {
		if err == repository.ErrTokenMismatch || err == repository.ErrTokenNotFound {
			uc.l.Warnf(ctx, "internal.auth.usecase.Refresh: possible token replay | User: %s", usr.ID)
		} else {
			uc.l.Errorf(ctx, "internal.auth.usecase.Refresh.Rotate: %v", err)
		}
		return auth.TokenPairOutput{}, auth.ErrInvalidRefreshToken
	}

	return auth.TokenPairOutput{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         usr,
	}, nil
}

func (uc *usecase) Logout(ctx context.Context, ip auth.LogoutInput) error {
	// Logout never fails client-side. Without a verifiable token there is
	// nothing to revoke; a failed delete only means the token dies at its
	// TTL.
	payload, err := uc.jwtMgr.VerifyRefreshToken(ip.RefreshToken)
	if err != nil {
		return nil
	}

	if err := uc.tokenRepo.Delete(ctx, payload.Subject); err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Logout.Delete: %v", err)
	}
	return nil
}

func (uc *usecase) checkTaken(ctx context.Context, opts userRepo.GetOneOptions, taken error) error {
	_, err := uc.userRepo.GetOne(ctx, model.Scope{}, opts)
	if err == nil {
		return taken
	}
	if err != userRepo.ErrNotFound {
		uc.l.Errorf(ctx, "internal.auth.usecase.checkTaken: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) issuePair(ctx context.Context, usr model.User) (string, string, error) {
	payload := pkgJWT.Payload{
		RegisteredClaims: jwtlib.RegisteredClaims{Subject: usr.ID},
		Email:            usr.Email,
		Role:             string(usr.Role),
	}

	access, err := uc.jwtMgr.CreateAccessToken(payload)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.issuePair.CreateAccessToken: %v", err)
		return "", "", err
	}

	refresh, err := uc.jwtMgr.CreateRefreshToken(payload)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.issuePair.CreateRefreshToken: %v", err)
		return "", "", err
	}

	return access, refresh, nil
}
