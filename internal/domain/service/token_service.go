package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates the JWTs used by the admin dashboard.
type TokenService interface {
	// GenerateToken issues a signed token for the given subject.
	GenerateToken(subject, secret string, ttl time.Duration) (string, error)

	// ValidateToken parses and verifies a token against the secret.
	ValidateToken(tokenString, secret string) (*jwt.Token, error)
}
