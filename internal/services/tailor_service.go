package services

import (
	"encoding/json"

	"tailorlink_backend/internal/models"
	"tailorlink_backend/internal/repositories"
	"tailorlink_backend/internal/services/dto"
	"tailorlink_backend/pkg/apperrors"
)

type TailorService interface {
	GetByID(id string) (*models.TailorProfile, error)
	GetByUserID(userID string) (*models.TailorProfile, error)
	UpdateProfile(userID string, req *dto.UpdateTailorProfileRequest) (*models.TailorProfile, error)
	GetPortfolio(id string) (*dto.TailorPortfolioResponse, error)
}

type TailorServiceImpl struct {
	tailorRepo repositories.TailorRepository
}

func NewTailorService(tailorRepo repositories.TailorRepository) TailorService {
	return &TailorServiceImpl{tailorRepo: tailorRepo}
}

func (s *TailorServiceImpl) GetByID(id string) (*models.TailorProfile, error) {
	profile, err := s.tailorRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTailorProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *TailorServiceImpl) GetByUserID(userID string) (*models.TailorProfile, error) {
	profile, err := s.tailorRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTailorProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *TailorServiceImpl) UpdateProfile(userID string, req *dto.UpdateTailorProfileRequest) (*models.TailorProfile, error) {
	profile, err := s.tailorRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTailorProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.ShopName != nil {
		profile.ShopName = *req.ShopName
	}
	if req.ShopAddress != nil {
		profile.ShopAddress = *req.ShopAddress
	}
	if req.Specialization != nil {
		profile.Specialization = models.Specialization(*req.Specialization)
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Availability != nil {
		profile.Availability = models.AvailabilityStatus(*req.Availability)
	}
	if req.Latitude != nil {
		profile.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		profile.Longitude = req.Longitude
	}

	if err := s.tailorRepo.Update(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *TailorServiceImpl) GetPortfolio(id string) (*dto.TailorPortfolioResponse, error) {
	profile, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	images := []string{}
	if len(profile.PortfolioImages) > 0 {
		if err := json.Unmarshal(profile.PortfolioImages, &images); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	return &dto.TailorPortfolioResponse{PortfolioImages: images}, nil
}
