package services

import (
	"outreachai_backend/internal/apperrors"
	"outreachai_backend/internal/dto"
	"outreachai_backend/internal/models"
	"outreachai_backend/internal/repositories"
)

type UserService interface {
	GetByID(userID string) (*dto.UserResponse, error)
	UpdateSMTPSettings(userID string, req *dto.UpdateSMTPSettingsRequest) error
	DisconnectGmail(userID string) error

	// Admin operations.
	List(query *dto.UserListQuery) ([]dto.UserResponse, int64, error)
	UpdateStatus(actorID, userID string, status models.UserStatus) (*dto.UserResponse, error)
}

type userService struct {
	users repositories.UserRepository
	audit AuditService
}

func NewUserService(users repositories.UserRepository, audit AuditService) UserService {
	return &userService{users: users, audit: audit}
}

func (s *userService) GetByID(userID string) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) UpdateSMTPSettings(userID string, req *dto.UpdateSMTPSettingsRequest) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	user.SMTPHost = req.Host
	user.SMTPPort = req.Port
	user.SMTPUsername = req.Username
	user.SMTPPassword = req.Password

	if err := s.users.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *userService) DisconnectGmail(userID string) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	user.GmailEmail = ""
	user.GmailRefreshToken = ""

	if err := s.users.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *userService) List(query *dto.UserListQuery) ([]dto.UserResponse, int64, error) {
	page, size := normalizePage(query.Page, query.Size)

	users, total, err := s.users.List(query.Query, models.UserStatus(query.Status), page, size)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.NewUserResponse(&users[i]))
	}
	return resp, total, nil
}

func (s *userService) UpdateStatus(actorID, userID string, status models.UserStatus) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if user.Role == models.UserRoleAdmin {
		return nil, apperrors.NewForbiddenError("Cannot change status of an admin account")
	}

	user.Status = status
	if err := s.users.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.audit.Record(actorID, "user.status_update", "user", user.ID, map[string]interface{}{
		"status": status,
	})

	resp := dto.NewUserResponse(user)
	return &resp, nil
}
