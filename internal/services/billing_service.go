package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"outreachai_backend/internal/apperrors"
	"outreachai_backend/internal/config"
	"outreachai_backend/internal/dto"
	"outreachai_backend/internal/integrations/paypal"
	"outreachai_backend/internal/integrations/stripe"
	"outreachai_backend/internal/logger"
	"outreachai_backend/internal/models"
	"outreachai_backend/internal/repositories"

	"gorm.io/gorm"
)

const subscriptionPeriod = 30 * 24 * time.Hour

type BillingService interface {
	CreatePayPalOrder(ctx context.Context, userID string, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
	// CapturePayPalOrder finalizes an approved order and returns the
	// path the buyer's browser is redirected to. It never returns an
	// error: failures map to an error redirect with nothing persisted.
	CapturePayPalOrder(ctx context.Context, orderID string) string

	CreateStripeCheckout(ctx context.Context, userID string, req *dto.CreateOrderRequest) (*dto.CheckoutResponse, error)
	HandleStripeWebhook(payload []byte, signatureHeader string) error

	ValidatePromo(userID, code string) (*dto.PromoDiscountResponse, error)
	GetSubscription(userID string) (*dto.SubscriptionResponse, error)
	ListTransactions(userID string) ([]dto.TransactionResponse, error)

	// Admin promo management.
	CreatePromoCode(actorID string, req *dto.CreatePromoCodeRequest) (*models.PromoCode, error)
	ListPromoCodes(page, size int) ([]models.PromoCode, int64, error)
	UpdatePromoCode(actorID, id string, req *dto.UpdatePromoCodeRequest) (*models.PromoCode, error)
	DeletePromoCode(actorID, id string) error
}

type billingService struct {
	db            *gorm.DB
	subscriptions repositories.SubscriptionRepository
	promos        repositories.PromoRepository
	users         repositories.UserRepository
	settings      SettingsService
	audit         AuditService
	paypalClient  *paypal.Client
	stripeClient  *stripe.Client
	cfg           *config.Config
}

func NewBillingService(
	db *gorm.DB,
	subscriptions repositories.SubscriptionRepository,
	promos repositories.PromoRepository,
	users repositories.UserRepository,
	settings SettingsService,
	audit AuditService,
	paypalClient *paypal.Client,
	stripeClient *stripe.Client,
	cfg *config.Config,
) BillingService {
	return &billingService{
		db:            db,
		subscriptions: subscriptions,
		promos:        promos,
		users:         users,
		settings:      settings,
		audit:         audit,
		paypalClient:  paypalClient,
		stripeClient:  stripeClient,
		cfg:           cfg,
	}
}

func (s *billingService) planPrice() (int64, string) {
	price := int64(s.settings.GetInt("plan_price_cents", int(s.cfg.Billing.PlanPriceCents)))
	currency := s.settings.GetString("plan_currency", s.cfg.Billing.PlanCurrency)
	return price, currency
}

func (s *billingService) CreatePayPalOrder(ctx context.Context, userID string, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	price, currency := s.planPrice()

	promoCode := ""
	if req.PromoCode != "" {
		discount, err := s.ValidatePromo(userID, req.PromoCode)
		if err != nil {
			return nil, err
		}
		price = discount.FinalCents
		promoCode = discount.Code
	}

	customField, err := paypal.EncodeCustomField(userID, promoCode)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	base := appBaseURL(s.cfg)
	returnURL := base + "/api/v1/billing/paypal/capture"
	cancelURL := base + "/pricing?status=cancelled"

	order, err := s.paypalClient.CreateOrder(ctx, price, currency, customField, returnURL, cancelURL)
	if err != nil {
		return nil, apperrors.ExternalError("PayPal", err)
	}

	return &dto.CreateOrderResponse{
		OrderID:    order.ID,
		ApproveURL: order.ApproveLink,
		Amount:     price,
		Currency:   currency,
	}, nil
}

func (s *billingService) CapturePayPalOrder(ctx context.Context, orderID string) string {
	if orderID == "" {
		return "/pricing?status=error&reason=missing_token"
	}

	order, err := s.paypalClient.CaptureOrder(ctx, orderID)
	if err != nil {
		logger.Error("paypal capture failed", "order_id", orderID, "error", err)
		return "/pricing?status=error&reason=capture_failed"
	}

	custom, err := paypal.DecodeCustomField(order.CustomID)
	if err != nil {
		logger.Error("paypal capture has unusable custom field", "order_id", orderID, "error", err)
		return "/pricing?status=error&reason=bad_custom_field"
	}

	if _, err := s.users.FindByID(custom.UserID); err != nil {
		logger.Error("paypal capture references unknown user", "order_id", orderID, "user_id", custom.UserID)
		return "/pricing?status=error&reason=unknown_user"
	}

	amount, err := parseAmountCents(order.Amount)
	if err != nil {
		logger.Error("paypal capture has unparseable amount", "order_id", orderID, "amount", order.Amount)
		return "/pricing?status=error&reason=bad_amount"
	}

	externalID := order.CaptureID
	if externalID == "" {
		externalID = order.ID
	}

	if err := s.applyPayment(custom.UserID, "paypal", externalID, amount, order.Currency, custom.PromoCode); err != nil {
		logger.Error("paypal capture persistence failed", "order_id", orderID, "error", err)
		return "/pricing?status=error&reason=persistence_failed"
	}

	return "/pricing?status=success"
}

func (s *billingService) CreateStripeCheckout(ctx context.Context, userID string, req *dto.CreateOrderRequest) (*dto.CheckoutResponse, error) {
	price, currency := s.planPrice()

	promoCode := ""
	if req.PromoCode != "" {
		discount, err := s.ValidatePromo(userID, req.PromoCode)
		if err != nil {
			return nil, err
		}
		price = discount.FinalCents
		promoCode = discount.Code
	}

	base := appBaseURL(s.cfg)
	successURL := base + "/pricing?status=success"
	cancelURL := base + "/pricing?status=cancelled"

	session, err := s.stripeClient.CreateCheckoutSession(ctx, userID, promoCode, price, currency, successURL, cancelURL)
	if err != nil {
		return nil, apperrors.ExternalError("Stripe", err)
	}

	return &dto.CheckoutResponse{
		SessionID:   session.ID,
		CheckoutURL: session.URL,
	}, nil
}

func (s *billingService) HandleStripeWebhook(payload []byte, signatureHeader string) error {
	event, err := stripe.ParseEvent(payload, signatureHeader, s.cfg.Stripe.WebhookSecret)
	if err != nil {
		return apperrors.NewBadRequestError("Invalid webhook signature")
	}

	if event.Type != "checkout.session.completed" {
		return nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Object, &session); err != nil {
		return apperrors.NewBadRequestError("Malformed webhook payload")
	}

	if session.PaymentStatus != "paid" || session.ClientReferenceID == "" {
		return nil
	}

	externalID := session.PaymentIntent
	if externalID == "" {
		externalID = session.ID
	}

	currency := strings.ToUpper(session.Currency)
	promo := session.Metadata["promo"]

	if err := s.applyPayment(session.ClientReferenceID, "stripe", externalID, session.AmountTotal, currency, promo); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// applyPayment is the single write path for both providers: inside one
// transaction the subscription is upserted, the payment recorded, and
// the promo redemption (if any) registered. The unique ExternalID
// makes a replayed capture or webhook a no-op success.
func (s *billingService) applyPayment(userID, provider, externalID string, amountCents int64, currency, promoCode string) error {
	if _, err := s.subscriptions.FindTransactionByExternalID(externalID); err == nil {
		logger.Info("duplicate payment callback ignored", "provider", provider, "external_id", externalID)
		return nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		subs := s.subscriptions.WithTx(tx)
		promos := s.promos.WithTx(tx)

		now := time.Now()
		periodEnd := now.Add(subscriptionPeriod)

		// free_days promos extend the period instead of discounting.
		var promo *models.PromoCode
		if promoCode != "" {
			found, err := promos.FindByCode(promoCode)
			if err == nil && found.Usable(now) {
				used, err := promos.HasUse(found.ID, userID)
				if err == nil && !used {
					promo = found
					if promo.Type == models.PromoTypeFreeDays {
						periodEnd = periodEnd.Add(time.Duration(promo.Value) * 24 * time.Hour)
					}
				}
			}
		}

		sub, err := subs.FindByUserID(userID)
		if errors.Is(err, repositories.ErrSubscriptionNotFound) {
			sub = &models.Subscription{UserID: userID}
		} else if err != nil {
			return err
		}

		sub.Status = models.SubscriptionStatusActive
		sub.Plan = "pro"
		sub.PeriodStart = now
		sub.PeriodEnd = periodEnd
		if err := subs.Save(sub); err != nil {
			return err
		}

		paidAt := now
		payment := &models.PaymentTransaction{
			UserID:     userID,
			Provider:   provider,
			ExternalID: externalID,
			Amount:     amountCents,
			Currency:   currency,
			Status:     models.PaymentStatusCompleted,
			PaidAt:     &paidAt,
		}
		if err := subs.CreateTransaction(payment); err != nil {
			return err
		}

		if promo != nil {
			if err := promos.RecordUse(promo.ID, userID); err != nil {
				return err
			}
		}

		return nil
	})

	// Two callbacks racing past the pre-check both reach the insert;
	// the unique ExternalID turns the loser into a no-op success.
	if isDuplicateKey(err) {
		logger.Info("duplicate payment callback ignored", "provider", provider, "external_id", externalID)
		return nil
	}
	return err
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func (s *billingService) ValidatePromo(userID, code string) (*dto.PromoDiscountResponse, error) {
	promo, err := s.promos.FindByCode(code)
	if err != nil {
		return nil, apperrors.ErrPromoInvalid
	}

	if !promo.Usable(time.Now()) {
		return nil, apperrors.ErrPromoInvalid
	}

	used, err := s.promos.HasUse(promo.ID, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if used {
		return nil, apperrors.ErrPromoAlreadyUsed
	}

	price, _ := s.planPrice()

	resp := &dto.PromoDiscountResponse{
		Code:          promo.Code,
		Type:          promo.Type,
		Value:         promo.Value,
		OriginalCents: price,
		FinalCents:    price,
	}

	switch promo.Type {
	case models.PromoTypePercent:
		resp.FinalCents = price - price*promo.Value/100
	case models.PromoTypeFixed:
		resp.FinalCents = price - promo.Value
	case models.PromoTypeFreeDays:
		resp.ExtraDays = int(promo.Value)
	}
	if resp.FinalCents < 0 {
		resp.FinalCents = 0
	}

	return resp, nil
}

func (s *billingService) GetSubscription(userID string) (*dto.SubscriptionResponse, error) {
	sub, err := s.subscriptions.FindByUserID(userID)
	if errors.Is(err, repositories.ErrSubscriptionNotFound) {
		return &dto.SubscriptionResponse{
			Status: models.SubscriptionStatusInactive,
			Active: false,
		}, nil
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.SubscriptionResponse{
		Status:      sub.Status,
		Plan:        sub.Plan,
		PeriodStart: sub.PeriodStart,
		PeriodEnd:   sub.PeriodEnd,
		Active:      sub.IsActive(time.Now()),
	}, nil
}

func (s *billingService) ListTransactions(userID string) ([]dto.TransactionResponse, error) {
	txs, err := s.subscriptions.ListTransactionsByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		resp = append(resp, dto.TransactionResponse{
			ID:        tx.ID,
			Provider:  tx.Provider,
			Amount:    tx.Amount,
			Currency:  tx.Currency,
			Status:    string(tx.Status),
			CreatedAt: tx.CreatedAt,
		})
	}
	return resp, nil
}

func (s *billingService) CreatePromoCode(actorID string, req *dto.CreatePromoCodeRequest) (*models.PromoCode, error) {
	promoType := models.PromoType(req.Type)
	if promoType == models.PromoTypePercent && req.Value > 100 {
		return nil, apperrors.NewBadRequestError("Percent discount cannot exceed 100")
	}

	validFrom := req.ValidFrom
	if validFrom.IsZero() {
		validFrom = time.Now()
	}
	if !req.ValidUntil.After(validFrom) {
		return nil, apperrors.NewBadRequestError("valid_until must be after valid_from")
	}

	promo := &models.PromoCode{
		Code:       strings.ToUpper(strings.TrimSpace(req.Code)),
		Type:       promoType,
		Value:      req.Value,
		MaxUses:    req.MaxUses,
		ValidFrom:  validFrom,
		ValidUntil: req.ValidUntil,
		IsActive:   true,
	}

	if err := s.promos.Create(promo); err != nil {
		return nil, apperrors.NewConflictError("Promo code already exists")
	}

	s.audit.Record(actorID, "promo.create", "promo_code", promo.ID, map[string]interface{}{
		"code": promo.Code,
		"type": promo.Type,
	})
	return promo, nil
}

func (s *billingService) ListPromoCodes(page, size int) ([]models.PromoCode, int64, error) {
	page, size = normalizePage(page, size)
	codes, total, err := s.promos.List(page, size)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return codes, total, nil
}

func (s *billingService) UpdatePromoCode(actorID, id string, req *dto.UpdatePromoCodeRequest) (*models.PromoCode, error) {
	promo, err := s.promos.FindByID(id)
	if err != nil {
		return nil, apperrors.NotFound("Promo code")
	}

	if req.MaxUses != nil {
		promo.MaxUses = *req.MaxUses
	}
	if req.ValidUntil != nil {
		promo.ValidUntil = *req.ValidUntil
	}
	if req.IsActive != nil {
		promo.IsActive = *req.IsActive
	}

	if err := s.promos.Update(promo); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.audit.Record(actorID, "promo.update", "promo_code", promo.ID, nil)
	return promo, nil
}

func (s *billingService) DeletePromoCode(actorID, id string) error {
	if err := s.promos.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrPromoNotFound) {
			return apperrors.NotFound("Promo code")
		}
		return apperrors.InternalError(err)
	}

	s.audit.Record(actorID, "promo.delete", "promo_code", id, nil)
	return nil
}

// parseAmountCents converts a provider decimal string ("9.99") to
// integer cents.
func parseAmountCents(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("empty amount")
	}

	parts := strings.SplitN(amount, ".", 2)
	whole, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	var cents int64
	if len(parts) == 2 {
		frac := parts[1]
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q: %w", amount, err)
		}
	}

	return whole*100 + cents, nil
}
