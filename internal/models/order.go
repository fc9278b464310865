package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Order is a customer's commission with a tailor. Orders are never deleted:
// cancellation is a status transition, and the order number is assigned
// exactly once at creation.
type Order struct {
	BaseModel
	OrderNumber         string      `gorm:"uniqueIndex;not null" json:"order_number"`
	CustomerID          string      `gorm:"type:uuid;not null;index" json:"customer_id"`
	TailorID            string      `gorm:"type:uuid;not null;index" json:"tailor_id"`
	OrderType           OrderType   `gorm:"type:varchar(20);not null" json:"order_type"`
	Status              OrderStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	TotalPrice          float64     `gorm:"not null" json:"total_price"`
	DepositAmount       float64     `gorm:"default:0" json:"deposit_amount"`
	DeliveryDate        *time.Time  `json:"delivery_date,omitempty"`
	MeasurementID       *string     `gorm:"type:uuid" json:"measurement_id,omitempty"`
	SpecialInstructions string      `json:"special_instructions"`

	Customer    *User                `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Tailor      *User                `gorm:"foreignKey:TailorID" json:"tailor,omitempty"`
	Measurement *CustomerMeasurement `gorm:"foreignKey:MeasurementID" json:"customer_measurement,omitempty"`
	Items       []OrderItem          `gorm:"foreignKey:OrderID" json:"items"`
}

// OrderItem is a single line item within an order.
type OrderItem struct {
	BaseModel
	OrderID             string            `gorm:"type:uuid;not null;index" json:"order_id"`
	ItemName            string            `gorm:"not null" json:"item_name"`
	Quantity            int               `gorm:"not null;default:1" json:"quantity"`
	Price               float64           `gorm:"not null" json:"price"`
	Measurements        datatypes.JSONMap `gorm:"default:'{}'" json:"measurements"`
	SpecialInstructions string            `json:"special_instructions"`
}

// NewOrderNumber generates a human-readable, globally unique order reference,
// e.g. "ORD-20260829-4F2A91BC".
func NewOrderNumber() string {
	date := time.Now().Format("20060102")
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("ORD-%s-%s", date, suffix)
}

// CalculateTotal sums price*quantity over the order's items.
func (o *Order) CalculateTotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
