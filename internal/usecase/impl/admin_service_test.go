package impl

import (
	"context"
	"testing"
	"time"

	"empreende/config"
	domainerrors "empreende/internal/domain/errors"
	"empreende/internal/infra/auth"
	"empreende/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminTestConfig(t *testing.T) *config.Config {
	t.Helper()

	hasher := auth.NewBcryptHasher()
	hash, err := hasher.Hash("s3nha-forte")
	require.NoError(t, err)

	cfg := newTestConfig()
	cfg.Admin = &config.AdminConfig{
		Username:     "organizador",
		PasswordHash: hash,
		JWTSecret:    "test-jwt-secret",
		TokenTTL:     time.Hour,
	}

	return cfg
}

func TestAdminService_Login(t *testing.T) {
	cfg := newAdminTestConfig(t)
	svc := NewAdminService(auth.NewBcryptHasher(), auth.NewJWTService(), cfg)

	result, err := svc.Login(context.Background(), &usecase.LoginInput{
		Username: "organizador",
		Password: "s3nha-forte",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, 3600, result.ExpiresIn)

	// The issued token round-trips through the validator.
	token, err := auth.NewJWTService().ValidateToken(result.Token, cfg.Admin.JWTSecret)
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "organizador", claims["sub"])
}

func TestAdminService_Login_InvalidCredentials(t *testing.T) {
	cfg := newAdminTestConfig(t)
	svc := NewAdminService(auth.NewBcryptHasher(), auth.NewJWTService(), cfg)

	t.Run("wrong username", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &usecase.LoginInput{
			Username: "intruso",
			Password: "s3nha-forte",
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &usecase.LoginInput{
			Username: "organizador",
			Password: "chute",
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAdminService_Login_MissingConfiguration(t *testing.T) {
	cfg := newTestConfig()
	svc := NewAdminService(auth.NewBcryptHasher(), auth.NewJWTService(), cfg)

	_, err := svc.Login(context.Background(), &usecase.LoginInput{
		Username: "organizador",
		Password: "s3nha-forte",
	})
	assert.ErrorIs(t, err, domainerrors.ErrConfigurationMissing)
}
