package services

import (
	"outreachai_backend/internal/apperrors"
	"outreachai_backend/internal/dto"
	"outreachai_backend/internal/models"
	"outreachai_backend/internal/repositories"
)

type RecipientService interface {
	Create(userID string, req *dto.CreateRecipientRequest) (*dto.RecipientResponse, error)
	Get(id, userID string) (*dto.RecipientResponse, error)
	List(userID, query string, page, size int) ([]dto.RecipientResponse, int64, error)
	Update(id, userID string, req *dto.UpdateRecipientRequest) (*dto.RecipientResponse, error)
	Delete(id, userID string) error
}

type recipientService struct {
	recipients repositories.RecipientRepository
}

func NewRecipientService(recipients repositories.RecipientRepository) RecipientService {
	return &recipientService{recipients: recipients}
}

func (s *recipientService) Create(userID string, req *dto.CreateRecipientRequest) (*dto.RecipientResponse, error) {
	recipient := &models.Recipient{
		UserID:       userID,
		Name:         truncate(req.Name, 200),
		Email:        truncate(req.Email, 200),
		Organization: truncate(req.Organization, 200),
		Role:         truncate(req.Role, 200),
		Notes:        truncate(req.Notes, 2000),
	}

	if err := s.recipients.Create(recipient); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewRecipientResponse(recipient)
	return &resp, nil
}

func (s *recipientService) Get(id, userID string) (*dto.RecipientResponse, error) {
	recipient, err := s.recipients.FindByIDForUser(id, userID)
	if err != nil {
		return nil, apperrors.NotFound("Recipient")
	}
	resp := dto.NewRecipientResponse(recipient)
	return &resp, nil
}

func (s *recipientService) List(userID, query string, page, size int) ([]dto.RecipientResponse, int64, error) {
	page, size = normalizePage(page, size)

	recipients, total, err := s.recipients.ListByUser(userID, query, page, size)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	resp := make([]dto.RecipientResponse, 0, len(recipients))
	for i := range recipients {
		resp = append(resp, dto.NewRecipientResponse(&recipients[i]))
	}
	return resp, total, nil
}

func (s *recipientService) Update(id, userID string, req *dto.UpdateRecipientRequest) (*dto.RecipientResponse, error) {
	recipient, err := s.recipients.FindByIDForUser(id, userID)
	if err != nil {
		return nil, apperrors.NotFound("Recipient")
	}

	if req.Name != nil {
		recipient.Name = truncate(*req.Name, 200)
	}
	if req.Email != nil {
		recipient.Email = truncate(*req.Email, 200)
	}
	if req.Organization != nil {
		recipient.Organization = truncate(*req.Organization, 200)
	}
	if req.Role != nil {
		recipient.Role = truncate(*req.Role, 200)
	}
	if req.Notes != nil {
		recipient.Notes = truncate(*req.Notes, 2000)
	}

	if err := s.recipients.Update(recipient); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewRecipientResponse(recipient)
	return &resp, nil
}

func (s *recipientService) Delete(id, userID string) error {
	if err := s.recipients.Delete(id, userID); err != nil {
		if err == repositories.ErrRecipientNotFound {
			return apperrors.NotFound("Recipient")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
