package models

// Role-gated order status transition table.
//
// The lifecycle is evaluated as pure data lookups: a missing row means no
// outbound transitions, which is how COMPLETED and CANCELLED stay terminal
// for customers and tailors alike.
//
//	PENDING ──> CONFIRMED ──> IN_PROGRESS ──> READY ──> COMPLETED
//	   │            │              │
//	   └────────────┴──────────────┴──> CANCELLED
//
// ADMIN actors bypass the table entirely (see CanTransition): back-office
// staff may set any valid status from any state.
var orderTransitions = map[UserRole]map[OrderStatus][]OrderStatus{
	UserRoleCustomer: {
		// A customer may only walk away from an order the tailor has not
		// started working on.
		OrderStatusPending:   {OrderStatusCancelled},
		OrderStatusConfirmed: {OrderStatusCancelled},
	},
	UserRoleTailor: {
		OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
		OrderStatusConfirmed:  {OrderStatusInProgress, OrderStatusCancelled},
		OrderStatusInProgress: {OrderStatusReady, OrderStatusCancelled},
		OrderStatusReady:      {OrderStatusCompleted},
	},
}

// CustomerAllowedTargets lists every status a customer may ever request.
// Used to tell "wrong actor for this target" apart from "wrong current state".
var customerAllowedTargets = map[OrderStatus]bool{
	OrderStatusCancelled: true,
}

var tailorAllowedTargets = map[OrderStatus]bool{
	OrderStatusConfirmed:  true,
	OrderStatusInProgress: true,
	OrderStatusReady:      true,
	OrderStatusCompleted:  true,
	OrderStatusCancelled:  true,
}

// RoleMayRequest reports whether the role is ever allowed to request the
// target status, regardless of the order's current state.
func RoleMayRequest(role UserRole, target OrderStatus) bool {
	switch role {
	case UserRoleAdmin:
		return true
	case UserRoleCustomer:
		return customerAllowedTargets[target]
	case UserRoleTailor:
		return tailorAllowedTargets[target]
	default:
		return false
	}
}

// CanTransition reports whether an actor with the given role may move an
// order from its current status to the target status. ADMIN is unrestricted
// apart from the target having to be a known status.
func CanTransition(role UserRole, current, target OrderStatus) bool {
	if !IsValidOrderStatus(target) {
		return false
	}
	if role == UserRoleAdmin {
		return true
	}
	for _, allowed := range orderTransitions[role][current] {
		if allowed == target {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the set of statuses reachable in one step from
// current for the given role. Terminal states return an empty slice.
func AllowedTransitions(role UserRole, current OrderStatus) []OrderStatus {
	if role == UserRoleAdmin {
		return AllOrderStatuses
	}
	return orderTransitions[role][current]
}
