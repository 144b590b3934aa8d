package handlers

import (
	"io"
	"net/http"

	"outreachai_backend/internal/apperrors"
	"outreachai_backend/internal/dto"
	"outreachai_backend/internal/middleware"
	"outreachai_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	*BaseHandler
	billing services.BillingService
}

func NewBillingHandler(base *BaseHandler, billing services.BillingService) *BillingHandler {
	return &BillingHandler{BaseHandler: base, billing: billing}
}

func (h *BillingHandler) CreatePayPalOrder(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	order, err := h.billing.CreatePayPalOrder(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// CapturePayPalOrder is hit by the buyer's browser returning from
// PayPal approval. It always redirects; the service maps failures to
// error query parameters.
func (h *BillingHandler) CapturePayPalOrder(c *gin.Context) {
	redirect := h.billing.CapturePayPalOrder(c.Request.Context(), c.Query("token"))
	c.Redirect(http.StatusFound, redirect)
}

func (h *BillingHandler) CreateStripeCheckout(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	session, err := h.billing.CreateStripeCheckout(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h *BillingHandler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Unreadable payload"))
		return
	}

	if err := h.billing.HandleStripeWebhook(payload, c.GetHeader("Stripe-Signature")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (h *BillingHandler) ValidatePromo(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	var req dto.ValidatePromoRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	discount, err := h.billing.ValidatePromo(userID, req.Code)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, discount)
}

func (h *BillingHandler) GetSubscription(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	sub, err := h.billing.GetSubscription(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

func (h *BillingHandler) ListTransactions(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	txs, err := h.billing.ListTransactions(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": txs})
}

// Admin promo endpoints.

func (h *BillingHandler) CreatePromoCode(c *gin.Context) {
	var req dto.CreatePromoCodeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	promo, err := h.billing.CreatePromoCode(middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, promo)
}

func (h *BillingHandler) ListPromoCodes(c *gin.Context) {
	page, size := h.ParsePagination(c)

	codes, total, err := h.billing.ListPromoCodes(page, size)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, Paginated{Items: codes, Total: total, Page: page, Size: size})
}

func (h *BillingHandler) UpdatePromoCode(c *gin.Context) {
	var req dto.UpdatePromoCodeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	promo, err := h.billing.UpdatePromoCode(middleware.GetUserID(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, promo)
}

func (h *BillingHandler) DeletePromoCode(c *gin.Context) {
	if err := h.billing.DeletePromoCode(middleware.GetUserID(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Promo code deleted"})
}
