package models

import "time"

// Subscription is one row per user, upserted by payment-capture flows
// only. Users never mutate it directly.
type Subscription struct {
	BaseModel
	UserID      string             `gorm:"uniqueIndex;not null"`
	Status      SubscriptionStatus `gorm:"type:varchar(20);default:'inactive'"`
	Plan        string             `gorm:"default:'pro'"`
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// PaymentTransaction is an immutable record of a captured payment.
// ExternalID is the provider's transaction id; its unique index is the
// dedup key that makes capture-callback retries idempotent.
type PaymentTransaction struct {
	BaseModel
	UserID     string        `gorm:"not null;index"`
	Provider   string        `gorm:"type:varchar(20);not null"` // "paypal", "stripe"
	ExternalID string        `gorm:"not null;uniqueIndex"`
	Amount     int64         // cents
	Currency   string        `gorm:"type:varchar(3)"`
	Status     PaymentStatus `gorm:"type:varchar(20)"`
	PaidAt     *time.Time
}

func (s *Subscription) IsActive(now time.Time) bool {
	return s.Status == SubscriptionStatusActive && now.Before(s.PeriodEnd)
}
