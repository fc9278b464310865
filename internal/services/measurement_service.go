package services

import (
	"gorm.io/datatypes"

	"tailorlink_backend/internal/models"
	"tailorlink_backend/internal/repositories"
	"tailorlink_backend/internal/services/dto"
	"tailorlink_backend/pkg/apperrors"
)

type MeasurementService interface {
	CreateTemplate(req *dto.CreateTemplateRequest) (*models.MeasurementTemplate, error)
	GetTemplate(id string) (*models.MeasurementTemplate, error)
	ListTemplates() ([]models.MeasurementTemplate, error)
	UpdateTemplate(id string, req *dto.UpdateTemplateRequest) (*models.MeasurementTemplate, error)
	DeleteTemplate(id string) error

	CreateRecord(userID string, role models.UserRole, req *dto.CreateMeasurementRequest) (*models.CustomerMeasurement, error)
	GetRecord(id, userID string, role models.UserRole) (*models.CustomerMeasurement, error)
	ListRecords(customerID string) ([]models.CustomerMeasurement, error)
	UpdateRecord(id, userID string, req *dto.UpdateMeasurementRequest) (*models.CustomerMeasurement, error)
	DeleteRecord(id, userID string) error
}

type MeasurementServiceImpl struct {
	measurementRepo repositories.MeasurementRepository
}

func NewMeasurementService(measurementRepo repositories.MeasurementRepository) MeasurementService {
	return &MeasurementServiceImpl{measurementRepo: measurementRepo}
}

func (s *MeasurementServiceImpl) CreateTemplate(req *dto.CreateTemplateRequest) (*models.MeasurementTemplate, error) {
	template := &models.MeasurementTemplate{
		Name:                 req.Name,
		Description:          req.Description,
		MeasurementType:      models.MeasurementType(req.MeasurementType),
		StandardMeasurements: datatypes.JSONMap(req.StandardFields),
	}
	if err := s.measurementRepo.CreateTemplate(template); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return template, nil
}

func (s *MeasurementServiceImpl) GetTemplate(id string) (*models.MeasurementTemplate, error) {
	template, err := s.measurementRepo.FindTemplateByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTemplateNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return template, nil
}

func (s *MeasurementServiceImpl) ListTemplates() ([]models.MeasurementTemplate, error) {
	templates, err := s.measurementRepo.FindAllTemplates()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return templates, nil
}

func (s *MeasurementServiceImpl) UpdateTemplate(id string, req *dto.UpdateTemplateRequest) (*models.MeasurementTemplate, error) {
	template, err := s.GetTemplate(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Description != nil {
		template.Description = *req.Description
	}
	if req.StandardFields != nil {
		template.StandardMeasurements = datatypes.JSONMap(req.StandardFields)
	}

	if err := s.measurementRepo.UpdateTemplate(template); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return template, nil
}

func (s *MeasurementServiceImpl) DeleteTemplate(id string) error {
	if _, err := s.GetTemplate(id); err != nil {
		return err
	}
	if err := s.measurementRepo.DeleteTemplate(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *MeasurementServiceImpl) CreateRecord(userID string, role models.UserRole, req *dto.CreateMeasurementRequest) (*models.CustomerMeasurement, error) {
	if role != models.UserRoleCustomer {
		return nil, apperrors.ErrNotACustomer
	}

	if _, err := s.GetTemplate(req.TemplateID); err != nil {
		return nil, err
	}

	record := &models.CustomerMeasurement{
		CustomerID:   userID,
		TemplateID:   req.TemplateID,
		Measurements: datatypes.JSONMap(req.Measurements),
		Notes:        req.Notes,
	}
	if err := s.measurementRepo.CreateRecord(record); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return record, nil
}

// GetRecord allows the owning customer and admins. Tailors see measurements
// only through orders that reference them.
func (s *MeasurementServiceImpl) GetRecord(id, userID string, role models.UserRole) (*models.CustomerMeasurement, error) {
	record, err := s.measurementRepo.FindRecordByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMeasurementNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if role != models.UserRoleAdmin && record.CustomerID != userID {
		return nil, apperrors.ErrMeasurementAccessDenied
	}
	return record, nil
}

func (s *MeasurementServiceImpl) ListRecords(customerID string) ([]models.CustomerMeasurement, error) {
	records, err := s.measurementRepo.FindRecordsByCustomer(customerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return records, nil
}

func (s *MeasurementServiceImpl) UpdateRecord(id, userID string, req *dto.UpdateMeasurementRequest) (*models.CustomerMeasurement, error) {
	record, err := s.measurementRepo.FindRecordByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMeasurementNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if record.CustomerID != userID {
		return nil, apperrors.ErrMeasurementAccessDenied
	}

	if req.Measurements != nil {
		record.Measurements = datatypes.JSONMap(req.Measurements)
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}

	if err := s.measurementRepo.UpdateRecord(record); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return record, nil
}

func (s *MeasurementServiceImpl) DeleteRecord(id, userID string) error {
	record, err := s.measurementRepo.FindRecordByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMeasurementNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if record.CustomerID != userID {
		return apperrors.ErrMeasurementAccessDenied
	}

	if err := s.measurementRepo.DeleteRecord(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
