package handlers

import (
	"tailorlink_backend/internal/services"
	"tailorlink_backend/internal/validator"
)

// AppHandlers holds every HTTP handler in the application.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	TailorHandler      *TailorHandler
	MeasurementHandler *MeasurementHandler
	OrderHandler       *OrderHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:        NewAuthHandler(base, container.Auth),
		UserHandler:        NewUserHandler(base, container.User),
		TailorHandler:      NewTailorHandler(base, container.Tailor),
		MeasurementHandler: NewMeasurementHandler(base, container.Measurement),
		OrderHandler:       NewOrderHandler(base, container.Order),
	}
}
