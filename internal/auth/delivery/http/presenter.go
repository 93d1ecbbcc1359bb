package http

import (
	"digital-api/internal/auth"
	"digital-api/internal/model"
)

// --- Request DTOs ---

type signupReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r signupReq) toInput() auth.SignupInput {
	return auth.SignupInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
	}
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
	IsActive   bool   `json:"is_active"`
}

func newUserResp(usr model.User) userResp {
	return userResp{
		ID:         usr.ID,
		Name:       usr.Name,
		Email:      usr.Email,
		Phone:      usr.Phone,
		Role:       string(usr.Role),
		IsVerified: usr.IsVerified,
		IsActive:   usr.IsActive,
	}
}

// tokenResp carries the access token in the body. The refresh token only
// travels in the HttpOnly cookie.
type tokenResp struct {
	AccessToken string   `json:"access_token"`
	User        userResp `json:"user"`
}

func newTokenResp(out auth.TokenPairOutput) tokenResp {
	return tokenResp{
		AccessToken: out.AccessToken,
		User:        newUserResp(out.User),
	}
}
