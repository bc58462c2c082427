package usecase

import "context"

// LoginInput is the admin dashboard login payload.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries the issued access token.
type LoginResult struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // seconds
}

// AdminUsecase authenticates the dashboard administrator.
type AdminUsecase interface {
	// Login verifies the credentials against the configured bcrypt hash and
	// issues a JWT.
	Login(ctx context.Context, input *LoginInput) (*LoginResult, error)
}
