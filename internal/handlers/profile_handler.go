package handlers

import (
	"net/http"

	"outreachai_backend/internal/dto"
	"outreachai_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profiles services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profiles services.ProfileService) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, profiles: profiles}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	profile, err := h.profiles.Get(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profiles.Update(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
