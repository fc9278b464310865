package services

import (
	"context"
	"time"

	"tailorlink_backend/internal/auth"
	"tailorlink_backend/internal/cache"
	"tailorlink_backend/internal/email"
	"tailorlink_backend/internal/logger"
	"tailorlink_backend/internal/models"
	"tailorlink_backend/internal/repositories"
	"tailorlink_backend/internal/services/dto"
	"tailorlink_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(refreshToken string) (*dto.LoginResponse, error)
	Logout(refreshToken string) error
	ChangePassword(userID, currentPassword, newPassword string) error
	RequestPasswordReset(ctx context.Context, email string) (*dto.PasswordResetResponse, error)
	ConfirmPasswordReset(ctx context.Context, req *dto.PasswordResetConfirm) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	tailorRepo       repositories.TailorRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	tokenStore       cache.TokenStore
	emailProvider    email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tailorRepo repositories.TailorRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	tokenStore cache.TokenStore,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		tailorRepo:       tailorRepo,
		refreshTokenRepo: refreshTokenRepo,
		tokenStore:       tokenStore,
		emailProvider:    emailProvider,
	}
}

func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	if req.Role != models.UserRoleCustomer && req.Role != models.UserRoleTailor {
		return nil, apperrors.ErrInvalidUserRole
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Address:      req.Address,
		Role:         req.Role,
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Tailors get their profile row up front so orders can reference them
	// immediately.
	if user.Role == models.UserRoleTailor {
		profile := &models.TailorProfile{
			UserID:       user.ID,
			ShopName:     req.ShopName,
			ShopAddress:  req.ShopAddress,
			Availability: models.AvailabilityAvailable,
		}
		if err := s.tailorRepo.Create(profile); err != nil {
			s.userRepo.Delete(user.ID)
			return nil, apperrors.InternalError(err)
		}
		user.TailorProfile = profile
	}

	s.sendWelcomeEmail(user.Email, user.FullName)

	return dto.NewUserResponse(user), nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := s.createRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserResponse(user),
	}, nil
}

func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.LoginResponse, error) {
	token, err := s.refreshTokenRepo.FindByToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		s.refreshTokenRepo.DeleteByToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(token.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	newRefreshToken, err := s.rotateRefreshToken(token.UserID, refreshToken)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		User:         dto.NewUserResponse(user),
	}, nil
}

func (s *AuthServiceImpl) Logout(refreshToken string) error {
	return s.refreshTokenRepo.DeleteByToken(refreshToken)
}

func (s *AuthServiceImpl) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	return s.userRepo.UpdatePassword(user.ID, hashedPassword)
}

// RequestPasswordReset issues a short-lived, single-use reset token.
//
// The response is deliberately identical whether or not the email is
// registered: the success body for an unknown email carries only the generic
// message, and no cache entry is written. For a known account a fresh token
// replaces any previous one under the same key.
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, emailAddr string) (*dto.PasswordResetResponse, error) {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return &dto.PasswordResetResponse{
				Message: "If this email exists, a password reset token has been generated.",
			}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	resetToken, err := auth.GenerateResetToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	key := cache.PasswordResetKey(user.ID)
	if err := s.tokenStore.Set(ctx, key, resetToken, cache.TTLPasswordReset); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.sendPasswordResetEmail(user.Email, resetToken)

	return &dto.PasswordResetResponse{
		Message:    "Password reset token generated successfully.",
		ResetToken: resetToken,
		Email:      user.Email,
		Note:       "In production this token is only delivered via email.",
		ExpiresIn:  "1 hour",
	}, nil
}

// ConfirmPasswordReset verifies and consumes a reset token.
//
// Unknown email, missing token and wrong token all collapse into the same
// uniform rejection; only the pre-lookup validation failures are specific.
func (s *AuthServiceImpl) ConfirmPasswordReset(ctx context.Context, req *dto.PasswordResetConfirm) error {
	if req.NewPassword != req.NewPasswordConfirm {
		return apperrors.ErrPasswordMismatch
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return apperrors.InternalError(err)
	}

	key := cache.PasswordResetKey(user.ID)
	stored, err := s.tokenStore.Get(ctx, key)
	if err != nil {
		if apperrors.Is(err, cache.ErrNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return apperrors.InternalError(err)
	}
	if stored != req.ResetToken {
		return apperrors.ErrInvalidResetToken
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(user.ID, hashedPassword); err != nil {
		return apperrors.InternalError(err)
	}

	// Single use: the token dies with the successful confirmation, and every
	// session is forced to re-authenticate.
	if err := s.tokenStore.Delete(ctx, key); err != nil {
		logger.Warn("failed to delete consumed reset token", "error", err, "user_id", user.ID)
	}
	s.refreshTokenRepo.DeleteByUserID(user.ID)

	return nil
}

func (s *AuthServiceImpl) createRefreshToken(userID string) (string, error) {
	refreshToken, err := auth.GenerateRandomToken(48)
	if err != nil {
		return "", err
	}

	model := &models.RefreshToken{
		UserID:    userID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}

	if err := s.refreshTokenRepo.Create(model); err != nil {
		return "", err
	}
	return refreshToken, nil
}

func (s *AuthServiceImpl) rotateRefreshToken(userID, oldToken string) (string, error) {
	if err := s.refreshTokenRepo.DeleteByToken(oldToken); err != nil {
		return "", err
	}
	return s.createRefreshToken(userID)
}

func (s *AuthServiceImpl) sendWelcomeEmail(to, name string) {
	if s.emailProvider == nil {
		return
	}
	go func() {
		if err := s.emailProvider.SendWelcome(to, name); err != nil {
			logger.Warn("failed to send welcome email", "error", err)
		}
	}()
}

func (s *AuthServiceImpl) sendPasswordResetEmail(to, token string) {
	if s.emailProvider == nil {
		return
	}
	go func() {
		if err := s.emailProvider.SendPasswordReset(to, token); err != nil {
			logger.Warn("failed to send password reset email", "error", err)
		}
	}()
}
