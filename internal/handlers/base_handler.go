package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"outreachai_backend/internal/apperrors"
	"outreachai_backend/internal/logger"
	"outreachai_backend/internal/middleware"
	"outreachai_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// BaseHandler carries the pieces every handler needs: validation and
// the shared error translation path.
type BaseHandler struct {
	Validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{Validator: v}
}

// BindAndValidateJSON binds the JSON body into req and runs struct
// validation. On failure the 400 response is written and false
// returned.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return h.validate(c, req)
}

// BindAndValidateQuery binds query parameters into req and validates.
func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}
	return h.validate(c, req)
}

func (h *BaseHandler) validate(c *gin.Context, req interface{}) bool {
	if err := h.Validator.Validate(req); err != nil {
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			apperrors.HandleError(c, apperrors.ValidationError(ve.Errors))
		} else {
			apperrors.HandleError(c, apperrors.NewBadRequestError(err.Error()))
		}
		return false
	}
	return true
}

// HandleServiceError translates a service error into the HTTP
// response. Unrecognized errors become a generic 500 with the cause
// logged server side only.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.CtxError(c.Request.Context(), "internal error", "error", appErr.Error())
		}
		apperrors.HandleError(c, appErr)
		return
	}

	logger.CtxError(c.Request.Context(), "unhandled service error", "error", err)
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// UserID returns the authenticated user id or writes a 401.
func (h *BaseHandler) UserID(c *gin.Context) (string, bool) {
	id := middleware.GetUserID(c)
	if id == "" {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return "", false
	}
	return id, true
}

// ParsePagination reads page/page_size query parameters with sane
// clamping.
func (h *BaseHandler) ParsePagination(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}
	return page, size
}

// Paginated is the standard list envelope.
type Paginated struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Size  int         `json:"page_size"`
}
