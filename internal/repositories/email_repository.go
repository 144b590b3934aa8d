package repositories

import (
	"errors"

	"outreachai_backend/internal/models"

	"gorm.io/gorm"
)

var ErrEmailNotFound = errors.New("email not found")

type EmailRepository interface {
	Create(email *models.GeneratedEmail) error
	FindByIDForUser(id, userID string) (*models.GeneratedEmail, error)
	FindByTrackingID(trackingID string) (*models.GeneratedEmail, error)
	ListByUser(userID string, status models.EmailStatus, page, pageSize int) ([]models.GeneratedEmail, int64, error)
	ListByRecipientForUser(recipientID, userID string) ([]models.GeneratedEmail, error)
	Update(email *models.GeneratedEmail) error
	Delete(id, userID string) error
	CreateAttachment(att *models.EmailAttachment) error
	CountByUser(userID string) (int64, error)
	CountSentByUser(userID string) (int64, error)
	CountSentAll() (int64, error)
}

type emailRepository struct {
	db *gorm.DB
}

func NewEmailRepository(db *gorm.DB) EmailRepository {
	return &emailRepository{db: db}
}

func (r *emailRepository) Create(email *models.GeneratedEmail) error {
	return r.db.Create(email).Error
}

func (r *emailRepository) FindByIDForUser(id, userID string) (*models.GeneratedEmail, error) {
	var email models.GeneratedEmail
	err := r.db.Preload("Recipient").Preload("Attachments").
		First(&email, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, err
	}
	return &email, nil
}

func (r *emailRepository) FindByTrackingID(trackingID string) (*models.GeneratedEmail, error) {
	var email models.GeneratedEmail
	err := r.db.First(&email, "tracking_id = ?", trackingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, err
	}
	return &email, nil
}

func (r *emailRepository) ListByUser(userID string, status models.EmailStatus, page, pageSize int) ([]models.GeneratedEmail, int64, error) {
	var emails []models.GeneratedEmail
	var total int64

	q := r.db.Model(&models.GeneratedEmail{}).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Recipient").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&emails).Error
	return emails, total, err
}

func (r *emailRepository) ListByRecipientForUser(recipientID, userID string) ([]models.GeneratedEmail, error) {
	var emails []models.GeneratedEmail
	err := r.db.Where("recipient_id = ? AND user_id = ?", recipientID, userID).
		Order("created_at DESC").
		Find(&emails).Error
	return emails, err
}

func (r *emailRepository) Update(email *models.GeneratedEmail) error {
	return r.db.Save(email).Error
}

func (r *emailRepository) Delete(id, userID string) error {
	result := r.db.Delete(&models.GeneratedEmail{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmailNotFound
	}
	return nil
}

func (r *emailRepository) CreateAttachment(att *models.EmailAttachment) error {
	return r.db.Create(att).Error
}

func (r *emailRepository) CountByUser(userID string) (int64, error) {
	var total int64
	err := r.db.Model(&models.GeneratedEmail{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

func (r *emailRepository) CountSentByUser(userID string) (int64, error) {
	var total int64
	err := r.db.Model(&models.GeneratedEmail{}).
		Where("user_id = ? AND status = ?", userID, models.EmailStatusSent).
		Count(&total).Error
	return total, err
}

func (r *emailRepository) CountSentAll() (int64, error) {
	var total int64
	err := r.db.Model(&models.GeneratedEmail{}).
		Where("status = ?", models.EmailStatusSent).
		Count(&total).Error
	return total, err
}
