package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailorlink_backend/internal/auth"
	"tailorlink_backend/internal/cache"
	"tailorlink_backend/internal/config"
	"tailorlink_backend/internal/models"
	"tailorlink_backend/internal/services/dto"
	"tailorlink_backend/pkg/apperrors"
)

func setupAuthService(t *testing.T) (AuthService, *fakeUserRepo, *fakeRefreshTokenRepo, *cache.MemoryTokenStore) {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg

	userRepo := newFakeUserRepo()
	tailorRepo := newFakeTailorRepo()
	refreshRepo := newFakeRefreshTokenRepo()
	store := cache.NewMemoryTokenStore()
	svc := NewAuthService(userRepo, tailorRepo, refreshRepo, store, noopEmailProvider{})
	return svc, userRepo, refreshRepo, store
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, role models.UserRole) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     "Test User",
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, repo.Create(user))
	return user
}

func TestRegister_CreatesTailorWithProfile(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:    "tailor@example.com",
		Password: "password123",
		FullName: "Aizhan T.",
		Role:     models.UserRoleTailor,
		ShopName: "Aizhan Atelier",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleTailor, resp.Role)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, "Aizhan Atelier", resp.Profile.ShopName)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, userRepo, _, _ := setupAuthService(t)
	seedUser(t, userRepo, "taken@example.com", "password123", models.UserRoleCustomer)

	_, err := svc.Register(&dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "password123",
		FullName: "Second",
		Role:     models.UserRoleCustomer,
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{
		Email:    "admin@example.com",
		Password: "password123",
		FullName: "Wannabe Admin",
		Role:     models.UserRoleAdmin,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestLogin(t *testing.T) {
	svc, userRepo, _, _ := setupAuthService(t)
	user := seedUser(t, userRepo, "customer@example.com", "password123", models.UserRoleCustomer)

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(&dto.LoginRequest{Email: user.Email, Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, user.ID, resp.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(&dto.LoginRequest{Email: user.Email, Password: "wrong-password"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		inactive := seedUser(t, userRepo, "inactive@example.com", "password123", models.UserRoleCustomer)
		inactive.IsActive = false
		require.NoError(t, userRepo.Update(inactive))

		_, err := svc.Login(&dto.LoginRequest{Email: inactive.Email, Password: "password123"})
		assert.ErrorIs(t, err, apperrors.ErrUserInactive)
	})
}

func TestRequestPasswordReset_UnknownEmailLeavesNoTrace(t *testing.T) {
	svc, _, _, store := setupAuthService(t)
	ctx := context.Background()

	resp, err := svc.RequestPasswordReset(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.Empty(t, resp.ResetToken)
	assert.Contains(t, resp.Message, "If this email exists")

	// Nothing may be written for an unknown identity.
	_, err = store.Get(ctx, cache.PasswordResetKey("ghost@example.com"))
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestRequestPasswordReset_StoresToken(t *testing.T) {
	svc, userRepo, _, store := setupAuthService(t)
	user := seedUser(t, userRepo, "customer@example.com", "password123", models.UserRoleCustomer)
	ctx := context.Background()

	resp, err := svc.RequestPasswordReset(ctx, user.Email)
	require.NoError(t, err)
	assert.Len(t, resp.ResetToken, auth.ResetTokenLength)
	assert.Equal(t, user.Email, resp.Email)

	stored, err := store.Get(ctx, cache.PasswordResetKey(user.ID))
	require.NoError(t, err)
	assert.Equal(t, resp.ResetToken, stored)
}

func TestRequestPasswordReset_SecondRequestReplacesFirst(t *testing.T) {
	svc, userRepo, _, store := setupAuthService(t)
	user := seedUser(t, userRepo, "customer@example.com", "password123", models.UserRoleCustomer)
	ctx := context.Background()

	first, err := svc.RequestPasswordReset(ctx, user.Email)
	require.NoError(t, err)
	second, err := svc.RequestPasswordReset(ctx, user.Email)
	require.NoError(t, err)
	require.NotEqual(t, first.ResetToken, second.ResetToken)

	stored, err := store.Get(ctx, cache.PasswordResetKey(user.ID))
	require.NoError(t, err)
	assert.Equal(t, second.ResetToken, stored)

	// Only the latest token confirms.
	err = svc.ConfirmPasswordReset(ctx, &dto.PasswordResetConfirm{
		Email:              user.Email,
		ResetToken:         first.ResetToken,
		NewPassword:        "newpassword123",
		NewPasswordConfirm: "newpassword123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)

	err = svc.ConfirmPasswordReset(ctx, &dto.PasswordResetConfirm{
		Email:              user.Email,
		ResetToken:         second.ResetToken,
		NewPassword:        "newpassword123",
		NewPasswordConfirm: "newpassword123",
	})
	assert.NoError(t, err)
}

func TestConfirmPasswordReset_MismatchFailsBeforeTokenLookup(t *testing.T) {
	svc, userRepo, _, store := setupAuthService(t)
	user := seedUser(t, userRepo, "customer@example.com", "password123", models.UserRoleCustomer)
	ctx := context.Background()

	resp, err := svc.RequestPasswordReset(ctx, user.Email)
	require.NoError(t, err)

	err = svc.ConfirmPasswordReset(ctx, &dto.PasswordResetConfirm{
		Email:              user.Email,
		ResetToken:         resp.ResetToken,
		NewPassword:        "newpassword123",
		NewPasswordConfirm: "different12345",
	})
	assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)

	// The token survives a mismatch and remains usable.
	stored, err := store.Get(ctx, cache.PasswordResetKey(user.ID))
	require.NoError(t, err)
	assert.Equal(t, resp.ResetToken, stored)
}

func TestConfirmPasswordReset_UniformRejection(t *testing.T) {
	svc, userRepo, _, _ := setupAuthService(t)
	user := seedUser(t, userRepo, "customer@example.com", "password123", models.UserRoleCustomer)
	ctx := context.Background()

	_, err := svc.RequestPasswordReset(ctx, user.Email)
	require.NoError(t, err)

	cases := []struct {
		name  string
		email string
		token string
	}{
		{"unknown email", "ghost@example.com", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"},
		{"wrong token", user.Email, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.ConfirmPasswordReset(ctx, &dto.PasswordResetConfirm{
				Email:              tc.email,
				ResetToken:         tc.token,
				NewPassword:        "newpassword123",
				NewPasswordConfirm: "newpassword123",
			})
			assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)
		})
	}
}

func TestConfirmPasswordReset_SingleUse(t *testing.T) {
	svc, userRepo, refreshRepo, store := setupAuthService(t)
	user := seedUser(t, userRepo, "customer@example.com", "password123", models.UserRoleCustomer)
	ctx := context.Background()

	// An active session that must die with the reset.
	_, err := svc.Login(&dto.LoginRequest{Email: user.Email, Password: "password123"})
	require.NoError(t, err)
	require.Equal(t, 1, refreshRepo.countForUser(user.ID))

	resp, err := svc.RequestPasswordReset(ctx, user.Email)
	require.NoError(t, err)

	confirm := &dto.PasswordResetConfirm{
		Email:              user.Email,
		ResetToken:         resp.ResetToken,
		NewPassword:        "newpassword123",
		NewPasswordConfirm: "newpassword123",
	}
	require.NoError(t, svc.ConfirmPasswordReset(ctx, confirm))

	// Password changed, sessions revoked, token consumed.
	updated, err := userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPasswordHash("newpassword123", updated.PasswordHash))
	assert.False(t, auth.CheckPasswordHash("password123", updated.PasswordHash))
	assert.Equal(t, 0, refreshRepo.countForUser(user.ID))

	_, err = store.Get(ctx, cache.PasswordResetKey(user.ID))
	assert.ErrorIs(t, err, cache.ErrNotFound)

	// Replay of the same token is rejected.
	err = svc.ConfirmPasswordReset(ctx, confirm)
	assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)
}

func TestChangePassword(t *testing.T) {
	svc, userRepo, _, _ := setupAuthService(t)
	user := seedUser(t, userRepo, "customer@example.com", "password123", models.UserRoleCustomer)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(user.ID, "not-the-password", "newpassword123")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("success", func(t *testing.T) {
		require.NoError(t, svc.ChangePassword(user.ID, "password123", "newpassword123"))
		updated, err := userRepo.FindByID(user.ID)
		require.NoError(t, err)
		assert.True(t, auth.CheckPasswordHash("newpassword123", updated.PasswordHash))
	})
}

func TestRefreshToken_RotatesToken(t *testing.T) {
	svc, userRepo, refreshRepo, _ := setupAuthService(t)
	user := seedUser(t, userRepo, "customer@example.com", "password123", models.UserRoleCustomer)

	login, err := svc.Login(&dto.LoginRequest{Email: user.Email, Password: "password123"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(login.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The old token is spent.
	_, err = svc.RefreshToken(login.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	assert.Equal(t, 1, refreshRepo.countForUser(user.ID))
}
