package dto

import (
	"time"

	"outreachai_backend/internal/models"
)

type GenerateEmailRequest struct {
	RecipientID  string   `json:"recipient_id" validate:"required"`
	DocumentIDs  []string `json:"document_ids" validate:"omitempty,max=5"`
	Tone         string   `json:"tone" validate:"omitempty,max=100"`
	Instructions string   `json:"instructions" validate:"omitempty,max=2000"`
}

type UpdateEmailRequest struct {
	Subject  *string `json:"subject" validate:"omitempty,max=500"`
	BodyHTML *string `json:"body_html"`
	BodyText *string `json:"body_text"`
}

type ReplyEmailRequest struct {
	BodyHTML string `json:"body_html" validate:"required"`
	BodyText string `json:"body_text"`
}

type BulkSendRequest struct {
	EmailIDs []string `json:"email_ids" validate:"required,min=1,max=100"`
}

type BulkSendResult struct {
	Sent   []string          `json:"sent"`
	Failed map[string]string `json:"failed"` // email id -> reason
}

type EmailResponse struct {
	ID             string               `json:"id"`
	RecipientID    string               `json:"recipient_id"`
	Subject        string               `json:"subject"`
	BodyHTML       string               `json:"body_html"`
	BodyText       string               `json:"body_text"`
	Status         models.EmailStatus   `json:"status"`
	Provider       models.EmailProvider `json:"provider,omitempty"`
	TrackingID     string               `json:"tracking_id,omitempty"`
	GmailThreadID  string               `json:"gmail_thread_id,omitempty"`
	SentAt         *time.Time           `json:"sent_at,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	Attachments    []AttachmentResponse `json:"attachments,omitempty"`
}

type AttachmentResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

func NewEmailResponse(e *models.GeneratedEmail) EmailResponse {
	resp := EmailResponse{
		ID:            e.ID,
		RecipientID:   e.RecipientID,
		Subject:       e.Subject,
		BodyHTML:      e.BodyHTML,
		BodyText:      e.BodyText,
		Status:        e.Status,
		Provider:      e.Provider,
		TrackingID:    e.TrackingID,
		GmailThreadID: e.GmailThreadID,
		SentAt:        e.SentAt,
		CreatedAt:     e.CreatedAt,
	}
	for _, att := range e.Attachments {
		resp.Attachments = append(resp.Attachments, AttachmentResponse{
			ID:          att.ID,
			DisplayName: att.DisplayName,
			ContentType: att.ContentType,
			SizeBytes:   att.SizeBytes,
		})
	}
	return resp
}

type ThreadMessageResponse struct {
	ID      string    `json:"id"`
	From    string    `json:"from"`
	Subject string    `json:"subject"`
	Snippet string    `json:"snippet"`
	Date    time.Time `json:"date"`
	IsReply bool      `json:"is_reply"`
}
