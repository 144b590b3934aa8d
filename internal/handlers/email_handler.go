package handlers

import (
	"net/http"

	"outreachai_backend/internal/apperrors"
	"outreachai_backend/internal/dto"
	"outreachai_backend/internal/models"
	"outreachai_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type EmailHandler struct {
	*BaseHandler
	emails services.EmailService
}

func NewEmailHandler(base *BaseHandler, emails services.EmailService) *EmailHandler {
	return &EmailHandler{BaseHandler: base, emails: emails}
}

func (h *EmailHandler) Generate(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	var req dto.GenerateEmailRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	draft, err := h.emails.Generate(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, draft)
}

func (h *EmailHandler) List(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	status := models.EmailStatus(c.Query("status"))
	if status != "" && status != models.EmailStatusDraft && status != models.EmailStatusSent {
		apperrors.HandleError(c, apperrors.NewBadRequestError("status must be draft or sent"))
		return
	}

	page, size := h.ParsePagination(c)
	emails, total, err := h.emails.List(userID, status, page, size)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, Paginated{Items: emails, Total: total, Page: page, Size: size})
}

func (h *EmailHandler) Get(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	mail, err := h.emails.Get(c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, mail)
}

func (h *EmailHandler) Update(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEmailRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	mail, err := h.emails.Update(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, mail)
}

func (h *EmailHandler) Delete(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	if err := h.emails.Delete(c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Draft deleted"})
}

func (h *EmailHandler) AddAttachment(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("A file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	mail, err := h.emails.AddAttachment(c.Request.Context(), c.Param("id"), userID,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mail)
}

func (h *EmailHandler) Send(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	mail, err := h.emails.Send(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, mail)
}

func (h *EmailHandler) Reply(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	var req dto.ReplyEmailRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	reply, err := h.emails.Reply(c.Request.Context(), c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reply)
}

func (h *EmailHandler) Thread(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	messages, err := h.emails.Thread(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (h *EmailHandler) BulkSend(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	var req dto.BulkSendRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.emails.BulkSend(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
