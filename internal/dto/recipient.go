package dto

import (
	"time"

	"outreachai_backend/internal/models"
)

type CreateRecipientRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Organization string `json:"organization"`
	Role         string `json:"role"`
	Notes        string `json:"notes"`
}

type UpdateRecipientRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Organization *string `json:"organization"`
	Role         *string `json:"role"`
	Notes        *string `json:"notes"`
}

type RecipientResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Organization string    `json:"organization"`
	Role         string    `json:"role"`
	Notes        string    `json:"notes"`
	EmailCount   int       `json:"email_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewRecipientResponse(r *models.Recipient) RecipientResponse {
	return RecipientResponse{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Organization: r.Organization,
		Role:         r.Role,
		Notes:        r.Notes,
		EmailCount:   len(r.Emails),
		CreatedAt:    r.CreatedAt,
	}
}
