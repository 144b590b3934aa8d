package dto

import (
	"time"

	"outreachai_backend/internal/models"
)

type UserResponse struct {
	ID         string            `json:"id"`
	Email      string            `json:"email"`
	Name       string            `json:"name"`
	Role       models.UserRole   `json:"role"`
	Status     models.UserStatus `json:"status"`
	IsVerified bool              `json:"is_verified"`
	GmailEmail string            `json:"gmail_email,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		Status:     u.Status,
		IsVerified: u.IsVerified,
		GmailEmail: u.GmailEmail,
		CreatedAt:  u.CreatedAt,
	}
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,is-user-status"`
}

type UpdateSMTPSettingsRequest struct {
	Host     string `json:"host" validate:"required"`
	Port     int    `json:"port" validate:"required,min=1,max=65535"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserListQuery struct {
	Query  string `form:"query"`
	Status string `form:"status" validate:"omitempty,is-user-status"`
	Page   int    `form:"page"`
	Size   int    `form:"page_size"`
}
