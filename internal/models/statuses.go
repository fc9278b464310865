package models

type UserRole string
type OrderStatus string
type OrderType string
type MeasurementType string
type Specialization string
type AvailabilityStatus string

const (
	UserRoleCustomer UserRole = "CUSTOMER"
	UserRoleTailor   UserRole = "TAILOR"
	UserRoleAdmin    UserRole = "ADMIN"

	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusReady      OrderStatus = "READY"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"

	OrderTypeShirt    OrderType = "SHIRT"
	OrderTypePants    OrderType = "PANTS"
	OrderTypeSuit     OrderType = "SUIT"
	OrderTypeDress    OrderType = "DRESS"
	OrderTypeJacket   OrderType = "JACKET"
	OrderTypeCustom   OrderType = "CUSTOM"
	OrderTypeMultiple OrderType = "MULTIPLE"

	MeasurementTypeShirt  MeasurementType = "SHIRT"
	MeasurementTypePants  MeasurementType = "PANTS"
	MeasurementTypeSuit   MeasurementType = "SUIT"
	MeasurementTypeDress  MeasurementType = "DRESS"
	MeasurementTypeJacket MeasurementType = "JACKET"
	MeasurementTypeCustom MeasurementType = "CUSTOM"

	SpecializationMenswear   Specialization = "MENSWEAR"
	SpecializationWomenswear Specialization = "WOMENSWEAR"
	SpecializationKids       Specialization = "KIDS"
	SpecializationFormal     Specialization = "FORMAL"
	SpecializationCasual     Specialization = "CASUAL"
	SpecializationCustom     Specialization = "CUSTOM"

	AvailabilityAvailable   AvailabilityStatus = "AVAILABLE"
	AvailabilityBusy        AvailabilityStatus = "BUSY"
	AvailabilityUnavailable AvailabilityStatus = "UNAVAILABLE"
)

// AllOrderStatuses is the closed set of order lifecycle states.
// Every status write goes through the transition table in order_status.go,
// so no order can ever hold a value outside this set.
var AllOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusInProgress,
	OrderStatusReady,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// IsValidOrderStatus reports whether s is a member of the enumerated set.
func IsValidOrderStatus(s OrderStatus) bool {
	for _, known := range AllOrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}
