package apperrors

import (
	"fmt"
	"net/http"
)

// Factories for wrapping repository errors.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrIllegalTransition reports a rejected order status change. The current
// and requested statuses are included so the caller can correct its request.
func ErrIllegalTransition(current, requested string) *AppError {
	return New(
		CodeInvalidTransition,
		"order",
		fmt.Sprintf("Cannot transition from %s to %s", current, requested),
		http.StatusConflict,
	)
}

// Predefined errors.

// ErrWrongActorForTransition is returned when the actor's role never permits
// the requested target status. Reported generically without internal state.
var ErrWrongActorForTransition = New(
	CodeForbidden,
	"order",
	"Your role does not permit this status change",
	http.StatusForbidden,
)

var ErrNoOrderAccess = New(
	CodeForbidden,
	"order",
	"You do not have permission to access this order",
	http.StatusForbidden,
)

var ErrOnlyCustomersCreateOrders = New(
	CodeForbidden,
	"order",
	"Only customers can create orders",
	http.StatusForbidden,
)

// ErrCancelNotAllowed covers the customer-facing cancel shortcut: cancelling
// is only possible while the order is PENDING or CONFIRMED.
func ErrCancelNotAllowed(current string) *AppError {
	return New(
		CodeInvalidStatus,
		"order",
		fmt.Sprintf("Cannot cancel order with status: %s", current),
		http.StatusBadRequest,
	)
}

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// Auth and credential reset.

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrPasswordMismatch = New(
	CodeValidationFailed,
	"validation",
	"New password and confirmation do not match",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrInvalidResetToken collapses "unknown email", "no stored token" and
// "wrong token" into one uniform message on the confirm path, so the
// endpoint cannot be used to probe which accounts exist.
var ErrInvalidResetToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid email or reset token",
	http.StatusBadRequest,
)

var ErrUserInactive = New(
	CodeForbidden,
	"auth",
	"Your account has been deactivated",
	http.StatusForbidden,
)

// Measurements.

var ErrNotACustomer = New(
	CodeInvalidOperation,
	"measurement",
	"Only customers can record measurements",
	http.StatusBadRequest,
)

var ErrMeasurementAccessDenied = New(
	CodeForbidden,
	"measurement",
	"You do not have permission to access this measurement",
	http.StatusForbidden,
)
