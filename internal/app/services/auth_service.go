package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/akshayp/cetadvisor/internal/app/models"
	"github.com/akshayp/cetadvisor/internal/app/models/dto"
	"github.com/akshayp/cetadvisor/internal/pkg/apperrors"
	"github.com/akshayp/cetadvisor/internal/pkg/auth"
)

// adminUserFinder is the lookup surface the auth service needs. It is
// satisfied by repositories.AdminUserRepository.
type adminUserFinder interface {
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
}

// AuthService handles admin authentication
type AuthService struct {
	adminRepo  adminUserFinder
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo adminUserFinder, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies admin credentials and issues a signed token. An unknown
// email and a wrong password both return ErrInvalidCredentials so the
// response does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to look up admin user")
		return nil, err
	}

	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Str("userId", user.ID).Msg("Failed to generate token")
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.AdminUserData{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}
