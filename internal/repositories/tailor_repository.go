package repositories

import (
	"errors"

	"tailorlink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTailorProfileNotFound = errors.New("tailor profile not found")

type TailorRepository interface {
	Create(profile *models.TailorProfile) error
	FindByID(id string) (*models.TailorProfile, error)
	FindByUserID(userID string) (*models.TailorProfile, error)
	Update(profile *models.TailorProfile) error
}

type TailorRepositoryImpl struct {
	db *gorm.DB
}

func NewTailorRepository(db *gorm.DB) TailorRepository {
	return &TailorRepositoryImpl{db: db}
}

func (r *TailorRepositoryImpl) Create(profile *models.TailorProfile) error {
	return r.db.Create(profile).Error
}

func (r *TailorRepositoryImpl) FindByID(id string) (*models.TailorProfile, error) {
	var profile models.TailorProfile
	err := r.db.Preload("User").First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTailorProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *TailorRepositoryImpl) FindByUserID(userID string) (*models.TailorProfile, error) {
	var profile models.TailorProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTailorProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *TailorRepositoryImpl) Update(profile *models.TailorProfile) error {
	return r.db.Save(profile).Error
}
