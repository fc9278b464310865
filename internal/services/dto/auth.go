package dto

import "tailorlink_backend/internal/models"

// RegisterRequest creates a CUSTOMER or TAILOR account. Admins are seeded,
// never registered.
type RegisterRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	FullName string          `json:"full_name" binding:"required"`
	Phone    string          `json:"phone"`
	Address  string          `json:"address"`
	Role     models.UserRole `json:"role" binding:"required,oneof=CUSTOMER TAILOR"`

	// Tailor-only fields
	ShopName    string `json:"shop_name,omitempty" binding:"required_if=Role TAILOR"`
	ShopAddress string `json:"shop_address,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// PasswordResetRequest asks for a reset token by email. The response is the
// same whether or not the account exists.
type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// PasswordResetResponse is returned when the account exists. The token is
// included in the body for development convenience; the email provider
// delivers it out-of-band as well.
type PasswordResetResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"reset_token,omitempty"`
	Email      string `json:"email,omitempty"`
	Note       string `json:"note,omitempty"`
	ExpiresIn  string `json:"expires_in,omitempty"`
}

// PasswordResetConfirm completes a reset. Token length is checked here as a
// cheap format guard before any lookups run.
type PasswordResetConfirm struct {
	Email              string `json:"email" binding:"required,email"`
	ResetToken         string `json:"reset_token" binding:"required,min=20"`
	NewPassword        string `json:"new_password" binding:"required,min=8"`
	NewPasswordConfirm string `json:"new_password_confirm" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
}
