package impl

import (
	"context"
	"crypto/subtle"

	"empreende/config"
	domainerrors "empreende/internal/domain/errors"
	"empreende/internal/domain/service"
	"empreende/internal/usecase"

	"github.com/pkg/errors"
)

type adminService struct {
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAdminService creates the dashboard authentication service.
func NewAdminService(
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	cfg *config.Config,
) usecase.AdminUsecase {
	return &adminService{
		hasher:   hasher,
		tokenSvc: tokenSvc,
		cfg:      cfg,
	}
}

// Login verifies the configured admin credentials and issues a JWT.
func (s *adminService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginResult, error) {
	admin := s.cfg.Admin
	if admin == nil || admin.Username == "" || admin.PasswordHash == "" || admin.JWTSecret == "" {
		return nil, domainerrors.ErrConfigurationMissing.WithDetails("admin credentials are not configured")
	}

	if subtle.ConstantTimeCompare([]byte(input.Username), []byte(admin.Username)) != 1 {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(admin.PasswordHash, input.Password); err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.GenerateToken(admin.Username, admin.JWTSecret, admin.TokenTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate admin token")
	}

	return &usecase.LoginResult{
		Token:     token,
		ExpiresIn: int(admin.TokenTTL.Seconds()),
	}, nil
}
