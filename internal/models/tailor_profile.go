package models

import "gorm.io/datatypes"

// TailorProfile holds tailor-specific data linked 1:1 to a User with role TAILOR.
type TailorProfile struct {
	BaseModel
	UserID          string             `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	ShopName        string             `gorm:"not null" json:"shop_name"`
	ShopAddress     string             `json:"shop_address"`
	Specialization  Specialization     `gorm:"type:varchar(20)" json:"specialization"`
	ExperienceYears int                `gorm:"default:0" json:"experience_years"`
	Rating          float64            `gorm:"default:0" json:"rating"`
	TotalReviews    int                `gorm:"default:0" json:"total_reviews"`
	Bio             string             `json:"bio"`
	PortfolioImages datatypes.JSON     `gorm:"default:'[]'" json:"portfolio_images"`
	Availability    AvailabilityStatus `gorm:"type:varchar(20);default:'AVAILABLE'" json:"availability_status"`
	Latitude        *float64           `json:"latitude,omitempty"`
	Longitude       *float64           `json:"longitude,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
