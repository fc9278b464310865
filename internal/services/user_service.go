package services

import (
	"tailorlink_backend/internal/models"
	"tailorlink_backend/internal/repositories"
	"tailorlink_backend/internal/services/dto"
	"tailorlink_backend/pkg/apperrors"
)

type UserService interface {
	GetByID(id string) (*dto.UserResponse, error)
	UpdateProfile(userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	List(query *dto.UserListQuery) (*dto.UserListResponse, error)
	Deactivate(userID string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetByID(id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *UserServiceImpl) UpdateProfile(userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// List is admin-only, enforced at the route level.
func (s *UserServiceImpl) List(query *dto.UserListQuery) (*dto.UserListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	size := query.Size
	if size < 1 || size > 100 {
		size = 20
	}

	users, total, err := s.userRepo.FindWithFilter(repositories.UserFilter{
		Role:     models.UserRole(query.Role),
		Search:   query.Search,
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *dto.NewUserResponse(&users[i]))
	}

	return &dto.UserListResponse{
		Users: responses,
		Total: total,
		Page:  page,
		Size:  size,
	}, nil
}

func (s *UserServiceImpl) Deactivate(userID string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	user.IsActive = false
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
