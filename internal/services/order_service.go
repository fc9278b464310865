package services

import (
	"gorm.io/datatypes"

	"tailorlink_backend/internal/models"
	"tailorlink_backend/internal/repositories"
	"tailorlink_backend/internal/services/dto"
	"tailorlink_backend/pkg/apperrors"
)

type OrderService interface {
	Create(customerID string, req *dto.CreateOrderRequest) (*models.Order, error)
	GetByID(orderID, userID string, role models.UserRole) (*models.Order, error)
	List(userID string, role models.UserRole, page, pageSize int) (*dto.OrderListResponse, error)
	UpdateStatus(orderID, userID string, role models.UserRole, target models.OrderStatus) (*models.Order, error)
	Cancel(orderID, userID string, role models.UserRole) (*models.Order, error)
}

type OrderServiceImpl struct {
	orderRepo       repositories.OrderRepository
	userRepo        repositories.UserRepository
	measurementRepo repositories.MeasurementRepository
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	userRepo repositories.UserRepository,
	measurementRepo repositories.MeasurementRepository,
) OrderService {
	return &OrderServiceImpl{
		orderRepo:       orderRepo,
		userRepo:        userRepo,
		measurementRepo: measurementRepo,
	}
}

func (s *OrderServiceImpl) Create(customerID string, req *dto.CreateOrderRequest) (*models.Order, error) {
	customer, err := s.userRepo.FindByID(customerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if customer.Role != models.UserRoleCustomer {
		return nil, apperrors.ErrOnlyCustomersCreateOrders
	}

	tailor, err := s.userRepo.FindByID(req.TailorID)
	if err != nil || tailor.Role != models.UserRoleTailor {
		return nil, apperrors.ErrNotFound(repositories.ErrUserNotFound)
	}

	order := &models.Order{
		OrderNumber:         models.NewOrderNumber(),
		CustomerID:          customerID,
		TailorID:            req.TailorID,
		OrderType:           models.OrderType(req.OrderType),
		Status:              models.OrderStatusPending,
		DepositAmount:       req.DepositAmount,
		DeliveryDate:        req.DeliveryDate,
		SpecialInstructions: req.SpecialInstructions,
	}

	// A measurement reference only sticks if the record belongs to the
	// ordering customer. Anything else is dropped silently rather than
	// rejected.
	if req.MeasurementID != nil && *req.MeasurementID != "" {
		m, err := s.measurementRepo.FindRecordByID(*req.MeasurementID)
		if err == nil && m.CustomerID == customerID {
			order.MeasurementID = req.MeasurementID
		}
	}

	for _, item := range req.Items {
		order.Items = append(order.Items, models.OrderItem{
			ItemName:            item.ItemName,
			Quantity:            item.Quantity,
			Price:               item.Price,
			Measurements:        datatypes.JSONMap(item.Measurements),
			SpecialInstructions: item.SpecialInstructions,
		})
	}
	order.TotalPrice = order.CalculateTotal()
	if order.TotalPrice == 0 {
		order.TotalPrice = req.TotalPrice
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.orderRepo.FindByID(order.ID)
}

func (s *OrderServiceImpl) GetByID(orderID, userID string, role models.UserRole) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !s.canAccess(order, userID, role) {
		return nil, apperrors.ErrNoOrderAccess
	}
	return order, nil
}

// List returns the orders visible to the caller: customers see their own,
// tailors see orders assigned to them, admins see everything.
func (s *OrderServiceImpl) List(userID string, role models.UserRole, page, pageSize int) (*dto.OrderListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var (
		orders []models.Order
		total  int64
		err    error
	)
	switch role {
	case models.UserRoleCustomer:
		orders, total, err = s.orderRepo.FindByCustomer(userID, page, pageSize)
	case models.UserRoleTailor:
		orders, total, err = s.orderRepo.FindByTailor(userID, page, pageSize)
	case models.UserRoleAdmin:
		orders, total, err = s.orderRepo.FindAll(page, pageSize)
	default:
		return nil, apperrors.ErrNoOrderAccess
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.OrderListResponse{
		Orders: orders,
		Total:  total,
		Page:   page,
		Size:   pageSize,
	}, nil
}

// UpdateStatus moves an order through its lifecycle. The rejection reason
// distinguishes "this role may never request that status" (403) from "that
// status is not reachable from here" (409); nothing is written on either.
func (s *OrderServiceImpl) UpdateStatus(orderID, userID string, role models.UserRole, target models.OrderStatus) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !s.canAccess(order, userID, role) {
		return nil, apperrors.ErrNoOrderAccess
	}

	if !models.RoleMayRequest(role, target) {
		return nil, apperrors.ErrWrongActorForTransition
	}
	if !models.CanTransition(role, order.Status, target) {
		return nil, apperrors.ErrIllegalTransition(string(order.Status), string(target))
	}

	if err := s.orderRepo.UpdateStatus(order.ID, target); err != nil {
		return nil, apperrors.InternalError(err)
	}

	order.Status = target
	return order, nil
}

// Cancel is the customer-facing shortcut for the CANCELLED transition. Only
// the order's own customer may use it, and only while the order is still
// PENDING or CONFIRMED.
func (s *OrderServiceImpl) Cancel(orderID, userID string, role models.UserRole) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if role != models.UserRoleCustomer || order.CustomerID != userID {
		return nil, apperrors.ErrNoOrderAccess
	}

	if !models.CanTransition(models.UserRoleCustomer, order.Status, models.OrderStatusCancelled) {
		return nil, apperrors.ErrCancelNotAllowed(string(order.Status))
	}

	if err := s.orderRepo.UpdateStatus(order.ID, models.OrderStatusCancelled); err != nil {
		return nil, apperrors.InternalError(err)
	}

	order.Status = models.OrderStatusCancelled
	return order, nil
}

func (s *OrderServiceImpl) canAccess(order *models.Order, userID string, role models.UserRole) bool {
	switch role {
	case models.UserRoleAdmin:
		return true
	case models.UserRoleCustomer:
		return order.CustomerID == userID
	case models.UserRoleTailor:
		return order.TailorID == userID
	}
	return false
}
