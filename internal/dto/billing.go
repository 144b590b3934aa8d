package dto

import (
	"time"

	"outreachai_backend/internal/models"
)

type CreateOrderRequest struct {
	PromoCode string `json:"promo_code" validate:"omitempty,max=64"`
}

type CreateOrderResponse struct {
	OrderID    string `json:"order_id"`
	ApproveURL string `json:"approve_url"`
	Amount     int64  `json:"amount_cents"`
	Currency   string `json:"currency"`
}

type CheckoutResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

type ValidatePromoRequest struct {
	Code string `json:"code" validate:"required,max=64"`
}

type PromoDiscountResponse struct {
	Code          string           `json:"code"`
	Type          models.PromoType `json:"type"`
	Value         int64            `json:"value"`
	OriginalCents int64            `json:"original_cents"`
	FinalCents    int64            `json:"final_cents"`
	ExtraDays     int              `json:"extra_days"`
}

type SubscriptionResponse struct {
	Status      models.SubscriptionStatus `json:"status"`
	Plan        string                    `json:"plan"`
	PeriodStart time.Time                 `json:"period_start"`
	PeriodEnd   time.Time                 `json:"period_end"`
	Active      bool                      `json:"active"`
}

type TransactionResponse struct {
	ID        string    `json:"id"`
	Provider  string    `json:"provider"`
	Amount    int64     `json:"amount_cents"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type CreatePromoCodeRequest struct {
	Code       string    `json:"code" validate:"required,min=3,max=64"`
	Type       string    `json:"type" validate:"required,is-promo-type"`
	Value      int64     `json:"value" validate:"required,min=1"`
	MaxUses    int       `json:"max_uses" validate:"min=0"`
	ValidFrom  time.Time `json:"valid_from"`
	ValidUntil time.Time `json:"valid_until" validate:"required"`
}

type UpdatePromoCodeRequest struct {
	MaxUses    *int       `json:"max_uses" validate:"omitempty,min=0"`
	ValidUntil *time.Time `json:"valid_until"`
	IsActive   *bool      `json:"is_active"`
}
