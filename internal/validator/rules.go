package validator

import (
	"log"

	"tailorlink_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the enum validation tags built on statuses.go.
// Empty values pass: 'required' owns presence checks.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-order-status", validateOrderStatus)
	mustRegister("is-order-type", validateOrderType)
	mustRegister("is-measurement-type", validateMeasurementType)
	mustRegister("is-specialization", validateSpecialization)
	mustRegister("is-availability", validateAvailability)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleCustomer, models.UserRoleTailor, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateOrderStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidOrderStatus(models.OrderStatus(value))
}

func validateOrderType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.OrderType(value) {
	case models.OrderTypeShirt, models.OrderTypePants, models.OrderTypeSuit,
		models.OrderTypeDress, models.OrderTypeJacket, models.OrderTypeCustom,
		models.OrderTypeMultiple:
		return true
	default:
		return false
	}
}

func validateMeasurementType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.MeasurementType(value) {
	case models.MeasurementTypeShirt, models.MeasurementTypePants,
		models.MeasurementTypeSuit, models.MeasurementTypeDress,
		models.MeasurementTypeJacket, models.MeasurementTypeCustom:
		return true
	default:
		return false
	}
}

func validateSpecialization(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.Specialization(value) {
	case models.SpecializationMenswear, models.SpecializationWomenswear,
		models.SpecializationKids, models.SpecializationFormal,
		models.SpecializationCasual, models.SpecializationCustom:
		return true
	default:
		return false
	}
}

func validateAvailability(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.AvailabilityStatus(value) {
	case models.AvailabilityAvailable, models.AvailabilityBusy, models.AvailabilityUnavailable:
		return true
	default:
		return false
	}
}
