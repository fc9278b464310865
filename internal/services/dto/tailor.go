package dto

type UpdateTailorProfileRequest struct {
	ShopName        *string  `json:"shop_name,omitempty"`
	ShopAddress     *string  `json:"shop_address,omitempty"`
	Specialization  *string  `json:"specialization,omitempty" validate:"omitempty,is-specialization"`
	ExperienceYears *int     `json:"experience_years,omitempty" binding:"omitempty,min=0"`
	Bio             *string  `json:"bio,omitempty"`
	Availability    *string  `json:"availability_status,omitempty" validate:"omitempty,is-availability"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
}

// TailorPortfolioResponse carries the stored portfolio image URLs.
type TailorPortfolioResponse struct {
	PortfolioImages []string `json:"portfolio_images"`
}
