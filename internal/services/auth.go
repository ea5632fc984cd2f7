package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/service"
	"maintenance-system/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Signup(ctx context.Context, payload dto.SignupDTO) (*entities.PortalUser, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*entities.PortalUser, error)
	Logout(ctx context.Context, claims *service.JwtCustomClaim) error
	GetUserByID(ctx context.Context, userID uint64) (*entities.PortalUser, error)
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

type AuthService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
	now       func() time.Time
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// Signup registers a portal user. Emails must be unique.
func (s *AuthService) Signup(ctx context.Context, payload dto.SignupDTO) (*entities.PortalUser, error) {
	logger := s.logger.With(zap.String("email", payload.Email))

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.CreateUser(ctx, entities.PortalUser{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: hash,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			logger.Warn("signup with an existing email")
		}
		return nil, err
	}

	logger.Info("portal user registered", zap.Uint64("userID", user.ID))
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*entities.PortalUser, error) {
	logger := s.logger.With(zap.String("email", payload.Email))

	user, err := s.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		logger.Warn("login for unknown account")
		return nil, err
	}
	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		logger.Warn("login with wrong password", zap.Uint64("userID", user.ID))
		return nil, apperrors.ErrInvalidPassword
	}

	logger.Info("portal user logged in", zap.Uint64("userID", user.ID))
	return user, nil
}

// Logout revokes the access token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, claims *service.JwtCustomClaim) error {
	if claims == nil || claims.ID == "" {
		return apperrors.ErrInvalidToken
	}
	ttl := claims.RemainingTTL(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.cacheRepo.Set(ctx, revokedTokenKey(claims.ID), claims.UserID, ttl); err != nil {
		s.logger.Error("failed to revoke token", zap.Error(err))
		return err
	}
	s.logger.Info("portal user logged out", zap.Uint64("userID", claims.UserID))
	return nil
}

func (s *AuthService) GetUserByID(ctx context.Context, userID uint64) (*entities.PortalUser, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	return s.cacheRepo.Exists(ctx, revokedTokenKey(jti))
}

func revokedTokenKey(jti string) string {
	return fmt.Sprintf(constants.CacheKeyRevokedToken, jti)
}

func UserToPublicDTO(u *entities.PortalUser) dto.UserPublicDTO {
	return dto.UserPublicDTO{ID: u.ID, Name: u.Name, Email: u.Email}
}
