package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"outreachai_backend/internal/apperrors"
	"outreachai_backend/internal/config"
	"outreachai_backend/internal/models"
	"outreachai_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePromoRepo struct {
	byCode map[string]*models.PromoCode
	uses   map[string]bool // promoID+userID
}

func newFakePromoRepo() *fakePromoRepo {
	return &fakePromoRepo{byCode: map[string]*models.PromoCode{}, uses: map[string]bool{}}
}

func (f *fakePromoRepo) Create(c *models.PromoCode) error {
	c.ID = "promo-" + c.Code
	f.byCode[c.Code] = c
	return nil
}

func (f *fakePromoRepo) FindByID(id string) (*models.PromoCode, error) {
	for _, c := range f.byCode {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repositories.ErrPromoNotFound
}

func (f *fakePromoRepo) FindByCode(code string) (*models.PromoCode, error) {
	c, ok := f.byCode[code]
	if !ok {
		return nil, repositories.ErrPromoNotFound
	}
	return c, nil
}

func (f *fakePromoRepo) List(page, pageSize int) ([]models.PromoCode, int64, error) {
	return nil, 0, nil
}

func (f *fakePromoRepo) Update(c *models.PromoCode) error { return nil }
func (f *fakePromoRepo) Delete(id string) error           { return nil }

func (f *fakePromoRepo) HasUse(promoCodeID, userID string) (bool, error) {
	return f.uses[promoCodeID+userID], nil
}

func (f *fakePromoRepo) RecordUse(promoCodeID, userID string) error {
	f.uses[promoCodeID+userID] = true
	return nil
}

func (f *fakePromoRepo) WithTx(tx *gorm.DB) repositories.PromoRepository { return f }

type fakeSubscriptionRepo struct {
	subs map[string]*models.Subscription
	txs  map[string]*models.PaymentTransaction
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{
		subs: map[string]*models.Subscription{},
		txs:  map[string]*models.PaymentTransaction{},
	}
}

func (f *fakeSubscriptionRepo) FindByUserID(userID string) (*models.Subscription, error) {
	sub, ok := f.subs[userID]
	if !ok {
		return nil, repositories.ErrSubscriptionNotFound
	}
	return sub, nil
}

func (f *fakeSubscriptionRepo) Save(sub *models.Subscription) error {
	f.subs[sub.UserID] = sub
	return nil
}

func (f *fakeSubscriptionRepo) ExpireOverdue(now time.Time) (int64, error) { return 0, nil }
func (f *fakeSubscriptionRepo) CountActive() (int64, error)                { return 0, nil }

func (f *fakeSubscriptionRepo) CreateTransaction(tx *models.PaymentTransaction) error {
	f.txs[tx.ExternalID] = tx
	return nil
}

func (f *fakeSubscriptionRepo) FindTransactionByExternalID(externalID string) (*models.PaymentTransaction, error) {
	tx, ok := f.txs[externalID]
	if !ok {
		return nil, repositories.ErrTransactionNotFound
	}
	return tx, nil
}

func (f *fakeSubscriptionRepo) ListTransactionsByUser(userID string) ([]models.PaymentTransaction, error) {
	return nil, nil
}

func (f *fakeSubscriptionRepo) SumCompletedRevenue() (int64, error) { return 0, nil }

func (f *fakeSubscriptionRepo) WithTx(tx *gorm.DB) repositories.SubscriptionRepository { return f }

type staticSettings struct{}

func (staticSettings) All() (map[string]interface{}, error)  { return nil, nil }
func (staticSettings) Set(key string, v interface{}) error   { return nil }
func (staticSettings) GetString(key, fallback string) string { return fallback }
func (staticSettings) GetInt(key string, fallback int) int   { return fallback }

func testBillingService(promos *fakePromoRepo, subs *fakeSubscriptionRepo) *billingService {
	cfg := &config.Config{}
	cfg.Billing.PlanPriceCents = 999
	cfg.Billing.PlanCurrency = "USD"

	return &billingService{
		subscriptions: subs,
		promos:        promos,
		settings:      staticSettings{},
		cfg:           cfg,
	}
}

func activePromo(code string, promoType models.PromoType, value int64) *models.PromoCode {
	return &models.PromoCode{
		Code:       code,
		Type:       promoType,
		Value:      value,
		ValidFrom:  time.Now().Add(-time.Hour),
		ValidUntil: time.Now().Add(time.Hour),
		IsActive:   true,
	}
}

func TestValidatePromo_PercentDiscount(t *testing.T) {
	promos := newFakePromoRepo()
	require.NoError(t, promos.Create(activePromo("HALF", models.PromoTypePercent, 50)))
	svc := testBillingService(promos, newFakeSubscriptionRepo())

	resp, err := svc.ValidatePromo("user-1", "HALF")
	require.NoError(t, err)

	assert.Equal(t, int64(999), resp.OriginalCents)
	assert.Equal(t, int64(500), resp.FinalCents) // 999 - 999*50/100 = 500 (integer math)
}

func TestValidatePromo_FixedDiscountFloorsAtZero(t *testing.T) {
	promos := newFakePromoRepo()
	require.NoError(t, promos.Create(activePromo("BIG", models.PromoTypeFixed, 5000)))
	svc := testBillingService(promos, newFakeSubscriptionRepo())

	resp, err := svc.ValidatePromo("user-1", "BIG")
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.FinalCents)
}

func TestValidatePromo_FreeDaysKeepsPrice(t *testing.T) {
	promos := newFakePromoRepo()
	require.NoError(t, promos.Create(activePromo("WEEK", models.PromoTypeFreeDays, 7)))
	svc := testBillingService(promos, newFakeSubscriptionRepo())

	resp, err := svc.ValidatePromo("user-1", "WEEK")
	require.NoError(t, err)
	assert.Equal(t, int64(999), resp.FinalCents)
	assert.Equal(t, 7, resp.ExtraDays)
}

func TestValidatePromo_RejectsPerUserReuse(t *testing.T) {
	promos := newFakePromoRepo()
	promo := activePromo("ONCE", models.PromoTypePercent, 10)
	promo.MaxUses = 100
	require.NoError(t, promos.Create(promo))
	svc := testBillingService(promos, newFakeSubscriptionRepo())

	// First validation passes.
	_, err := svc.ValidatePromo("user-1", "ONCE")
	require.NoError(t, err)

	// After redemption the same user is rejected even though global
	// uses remain.
	require.NoError(t, promos.RecordUse(promo.ID, "user-1"))

	_, err = svc.ValidatePromo("user-1", "ONCE")
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrPromoAlreadyUsed.Code, appErr.Code)

	// A different user is still fine.
	_, err = svc.ValidatePromo("user-2", "ONCE")
	require.NoError(t, err)
}

func TestValidatePromo_RejectsExpiredAndInactive(t *testing.T) {
	promos := newFakePromoRepo()

	expired := activePromo("OLD", models.PromoTypePercent, 10)
	expired.ValidUntil = time.Now().Add(-time.Minute)
	require.NoError(t, promos.Create(expired))

	disabled := activePromo("OFF", models.PromoTypePercent, 10)
	disabled.IsActive = false
	require.NoError(t, promos.Create(disabled))

	svc := testBillingService(promos, newFakeSubscriptionRepo())

	_, err := svc.ValidatePromo("user-1", "OLD")
	require.Error(t, err)
	_, err = svc.ValidatePromo("user-1", "OFF")
	require.Error(t, err)
	_, err = svc.ValidatePromo("user-1", "NEVER-EXISTED")
	require.Error(t, err)
}

func TestApplyPayment_DuplicateExternalIDIsNoOp(t *testing.T) {
	subs := newFakeSubscriptionRepo()
	subs.txs["CAP-1"] = &models.PaymentTransaction{ExternalID: "CAP-1", UserID: "user-1"}
	svc := testBillingService(newFakePromoRepo(), subs)

	// A replayed capture callback must succeed without touching the
	// database again.
	err := svc.applyPayment("user-1", "paypal", "CAP-1", 999, "USD", "")
	require.NoError(t, err)
	assert.Len(t, subs.txs, 1)
	assert.Empty(t, subs.subs)
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, isDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKey(fmt.Errorf("create transaction: %w", gorm.ErrDuplicatedKey)))
	assert.False(t, isDuplicateKey(nil))
	assert.False(t, isDuplicateKey(errors.New("connection reset")))
}

func TestParseAmountCents(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"9.99", 999, false},
		{"10", 1000, false},
		{"0.5", 50, false},
		{"123.456", 12345, false}, // extra precision is dropped
		{"", 0, true},
		{"abc", 0, true},
	}

	for _, tc := range cases {
		got, err := parseAmountCents(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
