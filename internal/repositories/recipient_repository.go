package repositories

import (
	"errors"

	"outreachai_backend/internal/models"

	"gorm.io/gorm"
)

var ErrRecipientNotFound = errors.New("recipient not found")

type RecipientRepository interface {
	Create(recipient *models.Recipient) error
	FindByIDForUser(id, userID string) (*models.Recipient, error)
	FindByIDsForUser(ids []string, userID string) ([]models.Recipient, error)
	ListByUser(userID, query string, page, pageSize int) ([]models.Recipient, int64, error)
	CountByUser(userID string) (int64, error)
	Update(recipient *models.Recipient) error
	Delete(id, userID string) error
}

type recipientRepository struct {
	db *gorm.DB
}

func NewRecipientRepository(db *gorm.DB) RecipientRepository {
	return &recipientRepository{db: db}
}

func (r *recipientRepository) Create(recipient *models.Recipient) error {
	return r.db.Create(recipient).Error
}

func (r *recipientRepository) FindByIDForUser(id, userID string) (*models.Recipient, error) {
	var recipient models.Recipient
	err := r.db.First(&recipient, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, err
	}
	return &recipient, nil
}

func (r *recipientRepository) FindByIDsForUser(ids []string, userID string) ([]models.Recipient, error) {
	var recipients []models.Recipient
	err := r.db.Where("id IN ? AND user_id = ?", ids, userID).Find(&recipients).Error
	return recipients, err
}

func (r *recipientRepository) ListByUser(userID, query string, page, pageSize int) ([]models.Recipient, int64, error) {
	var recipients []models.Recipient
	var total int64

	q := r.db.Model(&models.Recipient{}).Where("user_id = ?", userID)
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR organization ILIKE ?", like, like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&recipients).Error
	return recipients, total, err
}

func (r *recipientRepository) CountByUser(userID string) (int64, error) {
	var total int64
	err := r.db.Model(&models.Recipient{}).Where("user_id = ?", userID).Count(&total).Error
	return total, err
}

func (r *recipientRepository) Update(recipient *models.Recipient) error {
	return r.db.Save(recipient).Error
}

func (r *recipientRepository) Delete(id, userID string) error {
	result := r.db.Delete(&models.Recipient{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecipientNotFound
	}
	return nil
}
