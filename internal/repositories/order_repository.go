package repositories

import (
	"errors"

	"tailorlink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	Create(order *models.Order) error
	FindByID(id string) (*models.Order, error)
	FindByOrderNumber(number string) (*models.Order, error)
	FindByCustomer(customerID string, page, pageSize int) ([]models.Order, int64, error)
	FindByTailor(tailorID string, page, pageSize int) ([]models.Order, int64, error)
	FindAll(page, pageSize int) ([]models.Order, int64, error)
	UpdateStatus(orderID string, status models.OrderStatus) error
}

type OrderRepositoryImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// Create stores the order and its items in one transaction.
func (r *OrderRepositoryImpl) Create(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *OrderRepositoryImpl) FindByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.withRelations().First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindByOrderNumber(number string) (*models.Order, error) {
	var order models.Order
	err := r.withRelations().First(&order, "order_number = ?", number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindByCustomer(customerID string, page, pageSize int) ([]models.Order, int64, error) {
	return r.findPaged(r.withRelations().Where("customer_id = ?", customerID), page, pageSize)
}

func (r *OrderRepositoryImpl) FindByTailor(tailorID string, page, pageSize int) ([]models.Order, int64, error) {
	return r.findPaged(r.withRelations().Where("tailor_id = ?", tailorID), page, pageSize)
}

func (r *OrderRepositoryImpl) FindAll(page, pageSize int) ([]models.Order, int64, error) {
	return r.findPaged(r.withRelations(), page, pageSize)
}

// UpdateStatus writes exactly one column; the service layer has already
// decided that the transition is legal.
func (r *OrderRepositoryImpl) UpdateStatus(orderID string, status models.OrderStatus) error {
	result := r.db.Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepositoryImpl) withRelations() *gorm.DB {
	return r.db.Model(&models.Order{}).
		Preload("Customer").
		Preload("Tailor").
		Preload("Measurement").
		Preload("Items")
}

func (r *OrderRepositoryImpl) findPaged(query *gorm.DB, page, pageSize int) ([]models.Order, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	var orders []models.Order
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
