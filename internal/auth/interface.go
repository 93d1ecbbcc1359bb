package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Signup(ctx context.Context, ip SignupInput) (SignupOutput, error)
	Login(ctx context.Context, ip LoginInput) (TokenPairOutput, error)
	Refresh(ctx context.Context, ip RefreshInput) (TokenPairOutput, error)
	Logout(ctx context.Context, ip LogoutInput) error
}
