package handlers

import (
	"net/http"

	"outreachai_backend/internal/dto"
	"outreachai_backend/internal/middleware"
	"outreachai_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler covers announcements management, platform settings,
// the audit log, and platform-wide analytics.
type AdminHandler struct {
	*BaseHandler
	announcements services.AnnouncementService
	settings      services.SettingsService
	audit         services.AuditService
	analytics     services.AnalyticsService
}

func NewAdminHandler(
	base *BaseHandler,
	announcements services.AnnouncementService,
	settings services.SettingsService,
	audit services.AuditService,
	analytics services.AnalyticsService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:   base,
		announcements: announcements,
		settings:      settings,
		audit:         audit,
		analytics:     analytics,
	}
}

func (h *AdminHandler) ListAnnouncements(c *gin.Context) {
	list, err := h.announcements.ListAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": list})
}

func (h *AdminHandler) CreateAnnouncement(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	a, err := h.announcements.Create(middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, a)
}

func (h *AdminHandler) UpdateAnnouncement(c *gin.Context) {
	var req dto.UpdateAnnouncementRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	a, err := h.announcements.Update(middleware.GetUserID(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

func (h *AdminHandler) DeleteAnnouncement(c *gin.Context) {
	if err := h.announcements.Delete(middleware.GetUserID(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted"})
}

func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.settings.All()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *AdminHandler) UpdateSetting(c *gin.Context) {
	var req dto.UpdateSettingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.settings.Set(req.Key, req.Value); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.audit.Record(middleware.GetUserID(c), "setting.update", "app_setting", req.Key, map[string]interface{}{
		"value": req.Value,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Setting updated"})
}

func (h *AdminHandler) ListAuditLog(c *gin.Context) {
	var query dto.AuditLogQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	entries, total, err := h.audit.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	page, size := query.Page, query.Size
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}

	c.JSON(http.StatusOK, Paginated{Items: entries, Total: total, Page: page, Size: size})
}

func (h *AdminHandler) PlatformAnalytics(c *gin.Context) {
	stats, err := h.analytics.PlatformAnalytics()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
