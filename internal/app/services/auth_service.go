package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/models/dto"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/auth"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/ratelimit"
)

// AdminCredentials is the configured admin account created by CreateAdmin
type AdminCredentials struct {
	Username string
	Password string
	Email    string
}

// AuthService handles the admin account and session tokens
type AuthService interface {
	CreateAdmin(ctx context.Context) (*models.AdminAccount, error)
	Login(ctx context.Context, req *dto.LoginRequest, clientIP string) (*dto.LoginResponse, error)
}

type authServiceImpl struct {
	adminRepo  repositories.IAdminRepository
	jwtService *auth.JWTService
	limiter    ratelimit.Limiter
	admin      AdminCredentials
	logger     zerolog.Logger
	hash       func(string) (string, error)
}

// NewAuthService creates a new AuthService. A nil limiter disables throttling.
func NewAuthService(
	adminRepo repositories.IAdminRepository,
	jwtService *auth.JWTService,
	limiter ratelimit.Limiter,
	admin AdminCredentials,
	logger zerolog.Logger,
) AuthService {
	if limiter == nil {
		limiter = ratelimit.Noop{}
	}
	return &authServiceImpl{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		limiter:    limiter,
		admin:      admin,
		logger:     logger,
		hash:       auth.HashPassword,
	}
}

// CreateAdmin stores the configured admin with a bcrypt hash
func (s *authServiceImpl) CreateAdmin(ctx context.Context) (*models.AdminAccount, error) {
	username := strings.TrimSpace(s.admin.Username)
	if username == "" {
		return nil, apperrors.NewValidationError("admin username is not configured")
	}
	if s.admin.Password == "" {
		return nil, apperrors.NewValidationError("admin password is not configured")
	}

	hash, err := s.hash(s.admin.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash admin password")
	}

	admin, err := s.adminRepo.Create(ctx, &models.AdminAccount{
		Username:     username,
		PasswordHash: hash,
		Email:        s.admin.Email,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewConflictError("Admin user already exists")
		}
		return nil, err
	}

	s.logger.Info().Int64("adminID", admin.ID).Str("username", admin.Username).Msg("Admin account created")
	return admin, nil
}

// Login checks the credentials and signs a token. An unknown username and a
// wrong password produce the same error.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest, clientIP string) (*dto.LoginResponse, error) {
	attemptKey := strings.ToLower(req.Username) + "|" + clientIP
	allowed, err := s.limiter.Allow(ctx, attemptKey)
	if err != nil {
		// the limiter failing must not lock the admin out
		s.logger.Warn().Err(err).Msg("Login limiter unavailable")
		allowed = true
	}
	if !allowed {
		s.logger.Warn().Str("username", req.Username).Str("ip", clientIP).Msg("Too many login attempts")
		return nil, apperrors.NewTooManyRequestsError("Too many login attempts, try again later")
	}

	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			s.logger.Info().Str("username", req.Username).Msg("Login for unknown username")
			return nil, apperrors.NewInvalidCredentialsError()
		}
		return nil, err
	}

	if !auth.CheckPassword(admin.PasswordHash, req.Password) {
		s.logger.Info().Int64("adminID", admin.ID).Msg("Login with wrong password")
		return nil, apperrors.NewInvalidCredentialsError()
	}

	token, expiresAt, err := s.jwtService.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to issue token")
	}

	if err := s.limiter.Reset(ctx, attemptKey); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to reset login attempts")
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		User:      dto.AdminUser{ID: admin.ID, Username: admin.Username},
	}, nil
}
