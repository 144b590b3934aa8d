package repositories

import (
	"outreachai_backend/internal/models"

	"gorm.io/gorm"
)

type TrackingRepository interface {
	CreateOpen(open *models.EmailOpen) error
	CreateClick(click *models.LinkClick) error
	CountOpens(trackingID string) (int64, error)
	CountClicks(trackingID string) (int64, error)
	ListOpens(trackingID string) ([]models.EmailOpen, error)
	ListClicks(trackingID string) ([]models.LinkClick, error)
	CountOpensForUser(userID string) (int64, error)
	CountClicksForUser(userID string) (int64, error)
	CountOpenedEmailsForUser(userID string) (int64, error)
	CountAllOpens() (int64, error)
	CountAllClicks() (int64, error)
}

type trackingRepository struct {
	db *gorm.DB
}

func NewTrackingRepository(db *gorm.DB) TrackingRepository {
	return &trackingRepository{db: db}
}

func (r *trackingRepository) CreateOpen(open *models.EmailOpen) error {
	return r.db.Create(open).Error
}

func (r *trackingRepository) CreateClick(click *models.LinkClick) error {
	return r.db.Create(click).Error
}

func (r *trackingRepository) CountOpens(trackingID string) (int64, error) {
	var total int64
	err := r.db.Model(&models.EmailOpen{}).Where("tracking_id = ?", trackingID).Count(&total).Error
	return total, err
}

func (r *trackingRepository) CountClicks(trackingID string) (int64, error) {
	var total int64
	err := r.db.Model(&models.LinkClick{}).Where("tracking_id = ?", trackingID).Count(&total).Error
	return total, err
}

func (r *trackingRepository) ListOpens(trackingID string) ([]models.EmailOpen, error) {
	var opens []models.EmailOpen
	err := r.db.Where("tracking_id = ?", trackingID).Order("opened_at DESC").Find(&opens).Error
	return opens, err
}

func (r *trackingRepository) ListClicks(trackingID string) ([]models.LinkClick, error) {
	var clicks []models.LinkClick
	err := r.db.Where("tracking_id = ?", trackingID).Order("clicked_at DESC").Find(&clicks).Error
	return clicks, err
}

func (r *trackingRepository) CountOpensForUser(userID string) (int64, error) {
	var total int64
	err := r.db.Model(&models.EmailOpen{}).
		Joins("JOIN generated_emails ON generated_emails.tracking_id = email_opens.tracking_id").
		Where("generated_emails.user_id = ?", userID).
		Count(&total).Error
	return total, err
}

func (r *trackingRepository) CountClicksForUser(userID string) (int64, error) {
	var total int64
	err := r.db.Model(&models.LinkClick{}).
		Joins("JOIN generated_emails ON generated_emails.tracking_id = link_clicks.tracking_id").
		Where("generated_emails.user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// CountOpenedEmailsForUser counts distinct emails with at least one
// open event, which feeds the open-rate figure.
func (r *trackingRepository) CountOpenedEmailsForUser(userID string) (int64, error) {
	var total int64
	err := r.db.Model(&models.EmailOpen{}).
		Joins("JOIN generated_emails ON generated_emails.tracking_id = email_opens.tracking_id").
		Where("generated_emails.user_id = ?", userID).
		Distinct("email_opens.tracking_id").
		Count(&total).Error
	return total, err
}

func (r *trackingRepository) CountAllOpens() (int64, error) {
	var total int64
	err := r.db.Model(&models.EmailOpen{}).Count(&total).Error
	return total, err
}

func (r *trackingRepository) CountAllClicks() (int64, error) {
	var total int64
	err := r.db.Model(&models.LinkClick{}).Count(&total).Error
	return total, err
}
