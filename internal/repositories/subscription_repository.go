package repositories

import (
	"errors"
	"time"

	"outreachai_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
)

type SubscriptionRepository interface {
	FindByUserID(userID string) (*models.Subscription, error)
	Save(sub *models.Subscription) error
	ExpireOverdue(now time.Time) (int64, error)
	CountActive() (int64, error)

	CreateTransaction(tx *models.PaymentTransaction) error
	FindTransactionByExternalID(externalID string) (*models.PaymentTransaction, error)
	ListTransactionsByUser(userID string) ([]models.PaymentTransaction, error)
	SumCompletedRevenue() (int64, error)

	// WithTx returns a copy of the repository bound to the given
	// transaction handle, so capture flows can group their writes.
	WithTx(tx *gorm.DB) SubscriptionRepository
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) WithTx(tx *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: tx}
}

func (r *subscriptionRepository) FindByUserID(userID string) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.First(&sub, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) Save(sub *models.Subscription) error {
	return r.db.Save(sub).Error
}

func (r *subscriptionRepository) ExpireOverdue(now time.Time) (int64, error) {
	result := r.db.Model(&models.Subscription{}).
		Where("status = ? AND period_end < ?", models.SubscriptionStatusActive, now).
		Update("status", models.SubscriptionStatusInactive)
	return result.RowsAffected, result.Error
}

func (r *subscriptionRepository) CountActive() (int64, error) {
	var total int64
	err := r.db.Model(&models.Subscription{}).
		Where("status = ? AND period_end > ?", models.SubscriptionStatusActive, time.Now()).
		Count(&total).Error
	return total, err
}

func (r *subscriptionRepository) CreateTransaction(tx *models.PaymentTransaction) error {
	return r.db.Create(tx).Error
}

func (r *subscriptionRepository) FindTransactionByExternalID(externalID string) (*models.PaymentTransaction, error) {
	var tx models.PaymentTransaction
	err := r.db.First(&tx, "external_id = ?", externalID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *subscriptionRepository) ListTransactionsByUser(userID string) ([]models.PaymentTransaction, error) {
	var txs []models.PaymentTransaction
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&txs).Error
	return txs, err
}

func (r *subscriptionRepository) SumCompletedRevenue() (int64, error) {
	var total int64
	err := r.db.Model(&models.PaymentTransaction{}).
		Where("status = ?", models.PaymentStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
