package auth

import "digital-api/internal/model"

type SignupInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type RefreshInput struct {
	RefreshToken string
}

type LogoutInput struct {
	RefreshToken string
}

type SignupOutput struct {
	User model.User
}

type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
	User         model.User
}
