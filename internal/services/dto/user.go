package dto

import (
	"time"

	"tailorlink_backend/internal/models"
)

type UserResponse struct {
	ID        string                `json:"id"`
	Email     string                `json:"email"`
	FullName  string                `json:"full_name"`
	Phone     string                `json:"phone"`
	Address   string                `json:"address"`
	Role      models.UserRole       `json:"role"`
	IsActive  bool                  `json:"is_active"`
	CreatedAt time.Time             `json:"created_at"`
	Profile   *models.TailorProfile `json:"tailor_profile,omitempty"`
}

// NewUserResponse strips credential fields from a user record.
func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Phone:     user.Phone,
		Address:   user.Address,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		Profile:   user.TailorProfile,
	}
}

type UpdateUserRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

type UserListQuery struct {
	Role   string `form:"user_type" validate:"omitempty,is-user-role"`
	Search string `form:"search"`
	Page   int    `form:"page"`
	Size   int    `form:"page_size"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Size  int            `json:"page_size"`
}
