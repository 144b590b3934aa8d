package handlers

import (
	"net/http"

	"outreachai_backend/internal/dto"
	"outreachai_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type RecipientHandler struct {
	*BaseHandler
	recipients services.RecipientService
	emails     services.EmailService
}

func NewRecipientHandler(base *BaseHandler, recipients services.RecipientService, emails services.EmailService) *RecipientHandler {
	return &RecipientHandler{BaseHandler: base, recipients: recipients, emails: emails}
}

func (h *RecipientHandler) Create(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	var req dto.CreateRecipientRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	recipient, err := h.recipients.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipient)
}

func (h *RecipientHandler) List(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	page, size := h.ParsePagination(c)
	recipients, total, err := h.recipients.List(userID, c.Query("query"), page, size)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, Paginated{Items: recipients, Total: total, Page: page, Size: size})
}

func (h *RecipientHandler) Get(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	recipient, err := h.recipients.Get(c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipient)
}

func (h *RecipientHandler) Update(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	var req dto.UpdateRecipientRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	recipient, err := h.recipients.Update(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipient)
}

func (h *RecipientHandler) Delete(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	if err := h.recipients.Delete(c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipient deleted"})
}

// Emails lists every email drafted or sent to one recipient.
func (h *RecipientHandler) Emails(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	emails, err := h.emails.ListByRecipient(c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": emails})
}
