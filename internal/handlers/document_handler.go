package handlers

import (
	"fmt"
	"net/http"

	"outreachai_backend/internal/apperrors"
	"outreachai_backend/internal/config"
	"outreachai_backend/internal/models"
	"outreachai_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	*BaseHandler
	documents services.DocumentService
	cfg       *config.Config
}

func NewDocumentHandler(base *BaseHandler, documents services.DocumentService, cfg *config.Config) *DocumentHandler {
	return &DocumentHandler{BaseHandler: base, documents: documents, cfg: cfg}
}

var validDocumentTypes = map[models.DocumentType]bool{
	models.DocumentTypeCV:          true,
	models.DocumentTypeTranscript:  true,
	models.DocumentTypeCoverLetter: true,
	models.DocumentTypeOther:       true,
}

// Upload accepts one multipart file under "file" plus a "type" form
// field.
func (h *DocumentHandler) Upload(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	docType := models.DocumentType(c.PostForm("type"))
	if docType == "" {
		docType = models.DocumentTypeOther
	}
	if !validDocumentTypes[docType] {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid document type"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("A file is required"))
		return
	}

	if fileHeader.Size > h.cfg.Upload.MaxSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError(
			fmt.Sprintf("File exceeds the %d byte limit", h.cfg.Upload.MaxSize)))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !h.allowedType(contentType) {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Unsupported file type: "+contentType))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	doc, err := h.documents.Upload(c.Request.Context(), userID, docType, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

func (h *DocumentHandler) allowedType(contentType string) bool {
	for _, t := range h.cfg.Upload.AllowedTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

func (h *DocumentHandler) List(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	docs, err := h.documents.List(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": docs})
}

func (h *DocumentHandler) Get(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	doc, err := h.documents.Get(c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) Download(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	reader, doc, err := h.documents.Download(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.DisplayName))
	c.Header("Content-Type", doc.ContentType)
	c.DataFromReader(http.StatusOK, doc.SizeBytes, doc.ContentType, reader, nil)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	if err := h.documents.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}
