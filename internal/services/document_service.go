package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"outreachai_backend/internal/apperrors"
	"outreachai_backend/internal/dto"
	"outreachai_backend/internal/logger"
	"outreachai_backend/internal/models"
	"outreachai_backend/internal/repositories"
	"outreachai_backend/internal/storage"

	"github.com/google/uuid"
)

// extractedTextLimit caps the plain-text cache stored per document;
// prompt building truncates further.
const extractedTextLimit = 50_000

type DocumentService interface {
	Upload(ctx context.Context, userID string, docType models.DocumentType, displayName, contentType string, size int64, reader io.Reader) (*dto.DocumentResponse, error)
	List(userID string) ([]dto.DocumentResponse, error)
	Get(id, userID string) (*dto.DocumentResponse, error)
	Download(ctx context.Context, id, userID string) (io.ReadCloser, *models.Document, error)
	Delete(ctx context.Context, id, userID string) error
}

type documentService struct {
	documents repositories.DocumentRepository
	store     storage.Storage
}

func NewDocumentService(documents repositories.DocumentRepository, store storage.Storage) DocumentService {
	return &documentService{documents: documents, store: store}
}

func (s *documentService) Upload(ctx context.Context, userID string, docType models.DocumentType, displayName, contentType string, size int64, reader io.Reader) (*dto.DocumentResponse, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// The stored name is server-generated; the client's file name is
	// display metadata only.
	storedName := fmt.Sprintf("documents/%s/%s%s", userID, uuid.NewString(), safeExtension(displayName))

	if err := s.store.Save(ctx, storedName, bytes.NewReader(data), contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	doc := &models.Document{
		UserID:        userID,
		Type:          docType,
		DisplayName:   truncate(displayName, 255),
		StoredName:    storedName,
		ContentType:   contentType,
		SizeBytes:     size,
		ExtractedText: extractText(contentType, data),
	}

	if err := s.documents.Create(doc); err != nil {
		if delErr := s.store.Delete(ctx, storedName); delErr != nil {
			logger.Warn("failed to clean up orphaned upload", "path", storedName, "error", delErr)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewDocumentResponse(doc)
	return &resp, nil
}

func (s *documentService) List(userID string) ([]dto.DocumentResponse, error) {
	docs, err := s.documents.ListByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]dto.DocumentResponse, 0, len(docs))
	for i := range docs {
		resp = append(resp, dto.NewDocumentResponse(&docs[i]))
	}
	return resp, nil
}

func (s *documentService) Get(id, userID string) (*dto.DocumentResponse, error) {
	doc, err := s.documents.FindByIDForUser(id, userID)
	if err != nil {
		return nil, apperrors.NotFound("Document")
	}
	resp := dto.NewDocumentResponse(doc)
	return &resp, nil
}

func (s *documentService) Download(ctx context.Context, id, userID string) (io.ReadCloser, *models.Document, error) {
	doc, err := s.documents.FindByIDForUser(id, userID)
	if err != nil {
		return nil, nil, apperrors.NotFound("Document")
	}

	reader, err := s.store.Get(ctx, doc.StoredName)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	return reader, doc, nil
}

func (s *documentService) Delete(ctx context.Context, id, userID string) error {
	doc, err := s.documents.FindByIDForUser(id, userID)
	if err != nil {
		return apperrors.NotFound("Document")
	}

	if err := s.documents.Delete(id, userID); err != nil {
		return apperrors.InternalError(err)
	}

	// Blob removal is best effort once the row is gone.
	if err := s.store.Delete(ctx, doc.StoredName); err != nil {
		logger.Warn("failed to delete stored document", "path", doc.StoredName, "error", err)
	}
	return nil
}

// extractText caches a plain-text rendering used for prompt building.
// Only text types are parsed in-process; binary formats keep their
// display metadata and are skipped.
func extractText(contentType string, data []byte) string {
	if !strings.HasPrefix(contentType, "text/") {
		return ""
	}
	text := string(data)
	if len(text) > extractedTextLimit {
		text = text[:extractedTextLimit]
	}
	return text
}

func safeExtension(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) > 10 {
		return ""
	}
	for _, r := range ext {
		if r != '.' && (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
