package repositories

import (
	"errors"

	"tailorlink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTemplateNotFound    = errors.New("measurement template not found")
	ErrMeasurementNotFound = errors.New("customer measurement not found")
)

type MeasurementRepository interface {
	// Template operations
	CreateTemplate(template *models.MeasurementTemplate) error
	FindTemplateByID(id string) (*models.MeasurementTemplate, error)
	FindAllTemplates() ([]models.MeasurementTemplate, error)
	UpdateTemplate(template *models.MeasurementTemplate) error
	DeleteTemplate(id string) error

	// Customer measurement operations
	CreateRecord(record *models.CustomerMeasurement) error
	FindRecordByID(id string) (*models.CustomerMeasurement, error)
	FindRecordsByCustomer(customerID string) ([]models.CustomerMeasurement, error)
	UpdateRecord(record *models.CustomerMeasurement) error
	DeleteRecord(id string) error
}

type MeasurementRepositoryImpl struct {
	db *gorm.DB
}

func NewMeasurementRepository(db *gorm.DB) MeasurementRepository {
	return &MeasurementRepositoryImpl{db: db}
}

func (r *MeasurementRepositoryImpl) CreateTemplate(template *models.MeasurementTemplate) error {
	return r.db.Create(template).Error
}

func (r *MeasurementRepositoryImpl) FindTemplateByID(id string) (*models.MeasurementTemplate, error) {
	var template models.MeasurementTemplate
	err := r.db.First(&template, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return &template, nil
}

func (r *MeasurementRepositoryImpl) FindAllTemplates() ([]models.MeasurementTemplate, error) {
	var templates []models.MeasurementTemplate
	if err := r.db.Order("name").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *MeasurementRepositoryImpl) UpdateTemplate(template *models.MeasurementTemplate) error {
	return r.db.Save(template).Error
}

func (r *MeasurementRepositoryImpl) DeleteTemplate(id string) error {
	return r.db.Delete(&models.MeasurementTemplate{}, "id = ?", id).Error
}

func (r *MeasurementRepositoryImpl) CreateRecord(record *models.CustomerMeasurement) error {
	return r.db.Create(record).Error
}

func (r *MeasurementRepositoryImpl) FindRecordByID(id string) (*models.CustomerMeasurement, error) {
	var record models.CustomerMeasurement
	err := r.db.Preload("Template").First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeasurementNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *MeasurementRepositoryImpl) FindRecordsByCustomer(customerID string) ([]models.CustomerMeasurement, error) {
	var records []models.CustomerMeasurement
	err := r.db.Preload("Template").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *MeasurementRepositoryImpl) UpdateRecord(record *models.CustomerMeasurement) error {
	return r.db.Save(record).Error
}

func (r *MeasurementRepositoryImpl) DeleteRecord(id string) error {
	return r.db.Delete(&models.CustomerMeasurement{}, "id = ?", id).Error
}
