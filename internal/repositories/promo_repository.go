package repositories

import (
	"errors"

	"outreachai_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPromoNotFound = errors.New("promo code not found")

type PromoRepository interface {
	Create(code *models.PromoCode) error
	FindByID(id string) (*models.PromoCode, error)
	FindByCode(code string) (*models.PromoCode, error)
	List(page, pageSize int) ([]models.PromoCode, int64, error)
	Update(code *models.PromoCode) error
	Delete(id string) error

	HasUse(promoCodeID, userID string) (bool, error)
	RecordUse(promoCodeID, userID string) error

	WithTx(tx *gorm.DB) PromoRepository
}

type promoRepository struct {
	db *gorm.DB
}

func NewPromoRepository(db *gorm.DB) PromoRepository {
	return &promoRepository{db: db}
}

func (r *promoRepository) WithTx(tx *gorm.DB) PromoRepository {
	return &promoRepository{db: tx}
}

func (r *promoRepository) Create(code *models.PromoCode) error {
	return r.db.Create(code).Error
}

func (r *promoRepository) FindByID(id string) (*models.PromoCode, error) {
	var code models.PromoCode
	err := r.db.First(&code, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromoNotFound
		}
		return nil, err
	}
	return &code, nil
}

func (r *promoRepository) FindByCode(code string) (*models.PromoCode, error) {
	var promo models.PromoCode
	err := r.db.First(&promo, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromoNotFound
		}
		return nil, err
	}
	return &promo, nil
}

func (r *promoRepository) List(page, pageSize int) ([]models.PromoCode, int64, error) {
	var codes []models.PromoCode
	var total int64

	if err := r.db.Model(&models.PromoCode{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&codes).Error
	return codes, total, err
}

func (r *promoRepository) Update(code *models.PromoCode) error {
	return r.db.Save(code).Error
}

func (r *promoRepository) Delete(id string) error {
	result := r.db.Delete(&models.PromoCode{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPromoNotFound
	}
	return nil
}

func (r *promoRepository) HasUse(promoCodeID, userID string) (bool, error) {
	var total int64
	err := r.db.Model(&models.PromoCodeUse{}).
		Where("promo_code_id = ? AND user_id = ?", promoCodeID, userID).
		Count(&total).Error
	return total > 0, err
}

// RecordUse inserts the redemption row and bumps the aggregate counter.
// The unique index on (promo_code_id, user_id) rejects double redemption.
func (r *promoRepository) RecordUse(promoCodeID, userID string) error {
	use := &models.PromoCodeUse{PromoCodeID: promoCodeID, UserID: userID}
	if err := r.db.Create(use).Error; err != nil {
		return err
	}
	return r.db.Model(&models.PromoCode{}).
		Where("id = ?", promoCodeID).
		UpdateColumn("used_count", gorm.Expr("used_count + 1")).Error
}
