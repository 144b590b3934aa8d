package dto

import (
	"time"

	"outreachai_backend/internal/models"
)

type CreateAnnouncementRequest struct {
	Title    string `json:"title" validate:"required,max=300"`
	Body     string `json:"body" validate:"required"`
	IsActive bool   `json:"is_active"`
}

type UpdateAnnouncementRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=300"`
	Body     *string `json:"body"`
	IsActive *bool   `json:"is_active"`
}

type CreateTicketRequest struct {
	Subject string `json:"subject" validate:"required,max=300"`
	Body    string `json:"body" validate:"required,max=10000"`
}

type ReplyTicketRequest struct {
	Reply  string `json:"reply" validate:"required,max=10000"`
	Status string `json:"status" validate:"omitempty,is-ticket-status"`
}

type CreateFeedbackRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=5000"`
}

type TicketResponse struct {
	ID         string              `json:"id"`
	Subject    string              `json:"subject"`
	Body       string              `json:"body"`
	Status     models.TicketStatus `json:"status"`
	AdminReply string              `json:"admin_reply,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

func NewTicketResponse(t *models.SupportTicket) TicketResponse {
	return TicketResponse{
		ID:         t.ID,
		Subject:    t.Subject,
		Body:       t.Body,
		Status:     t.Status,
		AdminReply: t.AdminReply,
		CreatedAt:  t.CreatedAt,
	}
}

// UpdateSettingRequest carries one recognized key and its value. The
// settings service rejects keys outside the declared schema.
type UpdateSettingRequest struct {
	Key   string      `json:"key" validate:"required,max=100"`
	Value interface{} `json:"value" validate:"required"`
}

type AuditLogQuery struct {
	ActorID string `form:"actor_id"`
	Entity  string `form:"entity"`
	Page    int    `form:"page"`
	Size    int    `form:"page_size"`
}
