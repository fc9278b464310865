package dto

import (
	"time"

	"tailorlink_backend/internal/models"
)

type CreateOrderItemRequest struct {
	ItemName            string                 `json:"item_name" binding:"required"`
	Quantity            int                    `json:"quantity" binding:"required,min=1"`
	Price               float64                `json:"price" binding:"required,min=0"`
	Measurements        map[string]interface{} `json:"measurements"`
	SpecialInstructions string                 `json:"special_instructions"`
}

type CreateOrderRequest struct {
	TailorID            string                   `json:"tailor_id" binding:"required,uuid"`
	OrderType           string                   `json:"order_type" binding:"required" validate:"is-order-type"`
	TotalPrice          float64                  `json:"total_price" binding:"required,min=0"`
	DepositAmount       float64                  `json:"deposit_amount" binding:"min=0"`
	DeliveryDate        *time.Time               `json:"delivery_date,omitempty"`
	MeasurementID       *string                  `json:"customer_measurement_id,omitempty" binding:"omitempty,uuid"`
	SpecialInstructions string                   `json:"special_instructions"`
	Items               []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest carries the requested target status. Legality of
// the transition is decided by the service against the transition table.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"is-order-status"`
}

type OrderListResponse struct {
	Orders []models.Order `json:"orders"`
	Total  int64          `json:"total"`
	Page   int            `json:"page"`
	Size   int            `json:"page_size"`
}
