package models

import "time"

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	FullName     string   `gorm:"not null" json:"full_name"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	IsActive     bool     `gorm:"default:true" json:"is_active"`

	// Relations
	TailorProfile *TailorProfile `gorm:"foreignKey:UserID" json:"tailor_profile,omitempty"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
