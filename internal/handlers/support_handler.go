package handlers

import (
	"net/http"

	"outreachai_backend/internal/dto"
	"outreachai_backend/internal/middleware"
	"outreachai_backend/internal/models"
	"outreachai_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// SupportHandler covers the user-facing community surface:
// announcements, feedback, and support tickets.
type SupportHandler struct {
	*BaseHandler
	support       services.SupportService
	announcements services.AnnouncementService
}

func NewSupportHandler(base *BaseHandler, support services.SupportService, announcements services.AnnouncementService) *SupportHandler {
	return &SupportHandler{BaseHandler: base, support: support, announcements: announcements}
}

func (h *SupportHandler) ListAnnouncements(c *gin.Context) {
	list, err := h.announcements.ListActive()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": list})
}

func (h *SupportHandler) CreateTicket(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	var req dto.CreateTicketRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	ticket, err := h.support.CreateTicket(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

func (h *SupportHandler) ListOwnTickets(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	tickets, err := h.support.ListOwnTickets(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": tickets})
}

func (h *SupportHandler) GetOwnTicket(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	ticket, err := h.support.GetOwnTicket(c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

func (h *SupportHandler) CreateFeedback(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	var req dto.CreateFeedbackRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.support.CreateFeedback(userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Thanks for the feedback"})
}

// Admin side.

func (h *SupportHandler) AdminListTickets(c *gin.Context) {
	page, size := h.ParsePagination(c)
	status := models.TicketStatus(c.Query("status"))

	tickets, total, err := h.support.ListTickets(status, page, size)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, Paginated{Items: tickets, Total: total, Page: page, Size: size})
}

func (h *SupportHandler) AdminReplyTicket(c *gin.Context) {
	var req dto.ReplyTicketRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	ticket, err := h.support.ReplyTicket(middleware.GetUserID(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

func (h *SupportHandler) AdminListFeedback(c *gin.Context) {
	page, size := h.ParsePagination(c)

	list, total, err := h.support.ListFeedback(page, size)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, Paginated{Items: list, Total: total, Page: page, Size: size})
}
