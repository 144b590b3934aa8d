package dto

import (
	"time"

	"outreachai_backend/internal/models"
)

type DocumentResponse struct {
	ID          string              `json:"id"`
	Type        models.DocumentType `json:"type"`
	DisplayName string              `json:"display_name"`
	ContentType string              `json:"content_type"`
	SizeBytes   int64               `json:"size_bytes"`
	HasText     bool                `json:"has_text"`
	CreatedAt   time.Time           `json:"created_at"`
}

func NewDocumentResponse(d *models.Document) DocumentResponse {
	return DocumentResponse{
		ID:          d.ID,
		Type:        d.Type,
		DisplayName: d.DisplayName,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		HasText:     d.ExtractedText != "",
		CreatedAt:   d.CreatedAt,
	}
}
