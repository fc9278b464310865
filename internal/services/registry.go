package services

import (
	"gorm.io/gorm"

	"tailorlink_backend/internal/cache"
	"tailorlink_backend/internal/email"
	"tailorlink_backend/internal/repositories"
)

// ServiceContainer wires every service over a shared set of repositories.
type ServiceContainer struct {
	Auth        AuthService
	User        UserService
	Tailor      TailorService
	Measurement MeasurementService
	Order       OrderService

	RefreshTokens repositories.RefreshTokenRepository
}

func NewServiceContainer(db *gorm.DB, tokenStore cache.TokenStore, emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	tailorRepo := repositories.NewTailorRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	measurementRepo := repositories.NewMeasurementRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	return &ServiceContainer{
		Auth:          NewAuthService(userRepo, tailorRepo, refreshTokenRepo, tokenStore, emailProvider),
		User:          NewUserService(userRepo),
		Tailor:        NewTailorService(tailorRepo),
		Measurement:   NewMeasurementService(measurementRepo),
		Order:         NewOrderService(orderRepo, userRepo, measurementRepo),
		RefreshTokens: refreshTokenRepo,
	}
}
