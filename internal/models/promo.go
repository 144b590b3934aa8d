package models

import "time"

type PromoCode struct {
	BaseModel
	Code       string    `gorm:"uniqueIndex;not null"`
	Type       PromoType `gorm:"type:varchar(20);not null"`
	Value      int64     // percent for "percent", cents for "fixed", days for "free_days"
	MaxUses    int       `gorm:"default:0"` // 0 = unlimited
	UsedCount  int       `gorm:"default:0"`
	ValidFrom  time.Time
	ValidUntil time.Time
	IsActive   bool `gorm:"default:true"`
}

// PromoCodeUse is one append-only row per (code, user). The unique
// index enforces at-most-once redemption per user.
type PromoCodeUse struct {
	BaseModel
	PromoCodeID string `gorm:"not null;index;uniqueIndex:idx_promo_user"`
	UserID      string `gorm:"not null;uniqueIndex:idx_promo_user"`
}

// Usable reports whether the code can still be redeemed at all;
// per-user reuse is checked separately against PromoCodeUse rows.
func (p *PromoCode) Usable(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if now.Before(p.ValidFrom) || now.After(p.ValidUntil) {
		return false
	}
	if p.MaxUses > 0 && p.UsedCount >= p.MaxUses {
		return false
	}
	return true
}
