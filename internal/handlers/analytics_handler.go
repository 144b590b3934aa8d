package handlers

import (
	"net/http"

	"outreachai_backend/internal/config"
	"outreachai_backend/internal/dto"
	"outreachai_backend/internal/services"
	"outreachai_backend/internal/tracking"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	*BaseHandler
	analytics services.AnalyticsService
	settings  services.SettingsService
	cfg       *config.Config
}

func NewAnalyticsHandler(base *BaseHandler, analytics services.AnalyticsService, settings services.SettingsService, cfg *config.Config) *AnalyticsHandler {
	return &AnalyticsHandler{BaseHandler: base, analytics: analytics, settings: settings, cfg: cfg}
}

func (h *AnalyticsHandler) EmailAnalytics(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	stats, err := h.analytics.EmailAnalytics(c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) UserAnalytics(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	stats, err := h.analytics.UserAnalytics(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// TrackingDiagnostics reports which base URL outgoing tracking links
// will use and where it came from, for debugging deployments behind
// proxies.
func (h *AnalyticsHandler) TrackingDiagnostics(c *gin.Context) {
	base, source := tracking.RuntimeBaseURL(h.settings.GetString("app_base_url", ""), h.cfg)
	c.JSON(http.StatusOK, dto.TrackingDiagnosticsResponse{
		BaseURL: base,
		Source:  source,
	})
}
