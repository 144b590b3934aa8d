package handlers

import (
	"net/http"

	"outreachai_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type GmailHandler struct {
	*BaseHandler
	gmail services.GmailService
}

func NewGmailHandler(base *BaseHandler, gmail services.GmailService) *GmailHandler {
	return &GmailHandler{BaseHandler: base, gmail: gmail}
}

// Connect returns the Google consent URL the client should open.
func (h *GmailHandler) Connect(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	url, err := h.gmail.ConnectURL(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"auth_url": url})
}

// Callback is hit by Google's redirect; it finishes the OAuth dance
// and bounces the browser back to the settings page.
func (h *GmailHandler) Callback(c *gin.Context) {
	redirect := h.gmail.HandleCallback(c.Request.Context(), c.Query("state"), c.Query("code"))
	c.Redirect(http.StatusFound, redirect)
}
