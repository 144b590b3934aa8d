package handlers

import (
	"net/http"
	"strings"

	"outreachai_backend/internal/services"
	"outreachai_backend/internal/tracking"

	"github.com/gin-gonic/gin"
)

// TrackingHandler serves the two unauthenticated endpoints embedded in
// outgoing mail. Both must always answer; event recording is best
// effort.
type TrackingHandler struct {
	events services.TrackingService
}

func NewTrackingHandler(events services.TrackingService) *TrackingHandler {
	return &TrackingHandler{events: events}
}

// Open serves the 1x1 pixel. The response is identical whether or not
// the id is known, so the pixel leaks nothing.
func (h *TrackingHandler) Open(c *gin.Context) {
	id := strings.TrimSuffix(c.Param("id"), ".gif")

	h.events.RecordOpen(id, c.ClientIP(), c.Request.UserAgent())

	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Data(http.StatusOK, "image/gif", tracking.PixelGIF)
}

// Click records the event and redirects to the original target. A
// missing or unusable url parameter falls back to the app root; the
// redirect always happens.
func (h *TrackingHandler) Click(c *gin.Context) {
	id := c.Param("id")
	target := c.Query("url")

	if target != "" {
		h.events.RecordClick(id, target, c.ClientIP(), c.Request.UserAgent())
	}

	if target == "" || !isRedirectable(target) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.Redirect(http.StatusFound, target)
}

// isRedirectable rejects targets that would turn the redirect into a
// script or protocol-relative vector.
func isRedirectable(target string) bool {
	lower := strings.ToLower(strings.TrimSpace(target))
	if strings.HasPrefix(lower, "javascript:") || strings.HasPrefix(lower, "data:") {
		return false
	}
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "/")
}
