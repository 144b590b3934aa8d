package repositories

import (
	"errors"

	"outreachai_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrTicketNotFound       = errors.New("support ticket not found")
	ErrSettingNotFound      = errors.New("setting not found")
)

type AnnouncementRepository interface {
	Create(a *models.Announcement) error
	FindByID(id string) (*models.Announcement, error)
	ListActive() ([]models.Announcement, error)
	ListAll() ([]models.Announcement, error)
	Update(a *models.Announcement) error
	Delete(id string) error
}

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(a *models.Announcement) error {
	return r.db.Create(a).Error
}

func (r *announcementRepository) FindByID(id string) (*models.Announcement, error) {
	var a models.Announcement
	err := r.db.First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *announcementRepository) ListActive() ([]models.Announcement, error) {
	var list []models.Announcement
	err := r.db.Where("is_active = ?", true).Order("published_at DESC NULLS LAST").Find(&list).Error
	return list, err
}

func (r *announcementRepository) ListAll() ([]models.Announcement, error) {
	var list []models.Announcement
	err := r.db.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *announcementRepository) Update(a *models.Announcement) error {
	return r.db.Save(a).Error
}

func (r *announcementRepository) Delete(id string) error {
	result := r.db.Delete(&models.Announcement{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAnnouncementNotFound
	}
	return nil
}

type SupportRepository interface {
	CreateTicket(t *models.SupportTicket) error
	FindTicketByID(id string) (*models.SupportTicket, error)
	FindTicketByIDForUser(id, userID string) (*models.SupportTicket, error)
	ListTicketsByUser(userID string) ([]models.SupportTicket, error)
	ListTickets(status models.TicketStatus, page, pageSize int) ([]models.SupportTicket, int64, error)
	UpdateTicket(t *models.SupportTicket) error

	CreateFeedback(f *models.Feedback) error
	ListFeedback(page, pageSize int) ([]models.Feedback, int64, error)
}

type supportRepository struct {
	db *gorm.DB
}

func NewSupportRepository(db *gorm.DB) SupportRepository {
	return &supportRepository{db: db}
}

func (r *supportRepository) CreateTicket(t *models.SupportTicket) error {
	return r.db.Create(t).Error
}

func (r *supportRepository) FindTicketByID(id string) (*models.SupportTicket, error) {
	var t models.SupportTicket
	err := r.db.First(&t, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *supportRepository) FindTicketByIDForUser(id, userID string) (*models.SupportTicket, error) {
	var t models.SupportTicket
	err := r.db.First(&t, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *supportRepository) ListTicketsByUser(userID string) ([]models.SupportTicket, error) {
	var list []models.SupportTicket
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *supportRepository) ListTickets(status models.TicketStatus, page, pageSize int) ([]models.SupportTicket, int64, error) {
	var list []models.SupportTicket
	var total int64

	q := r.db.Model(&models.SupportTicket{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&list).Error
	return list, total, err
}

func (r *supportRepository) UpdateTicket(t *models.SupportTicket) error {
	return r.db.Save(t).Error
}

func (r *supportRepository) CreateFeedback(f *models.Feedback) error {
	return r.db.Create(f).Error
}

func (r *supportRepository) ListFeedback(page, pageSize int) ([]models.Feedback, int64, error) {
	var list []models.Feedback
	var total int64

	if err := r.db.Model(&models.Feedback{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&list).Error
	return list, total, err
}

type SettingsRepository interface {
	Get(key string) (*models.AppSetting, error)
	Upsert(setting *models.AppSetting) error
	All() ([]models.AppSetting, error)
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(key string) (*models.AppSetting, error) {
	var s models.AppSetting
	err := r.db.First(&s, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) Upsert(setting *models.AppSetting) error {
	var existing models.AppSetting
	err := r.db.First(&existing, "key = ?", setting.Key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(setting).Error
	}
	if err != nil {
		return err
	}
	existing.Value = setting.Value
	return r.db.Save(&existing).Error
}

func (r *settingsRepository) All() ([]models.AppSetting, error) {
	var settings []models.AppSetting
	err := r.db.Order("key ASC").Find(&settings).Error
	return settings, err
}

type AuditRepository interface {
	Create(entry *models.AuditLog) error
	List(actorID, entity string, page, pageSize int) ([]models.AuditLog, int64, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *auditRepository) List(actorID, entity string, page, pageSize int) ([]models.AuditLog, int64, error) {
	var list []models.AuditLog
	var total int64

	q := r.db.Model(&models.AuditLog{})
	if actorID != "" {
		q = q.Where("actor_id = ?", actorID)
	}
	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&list).Error
	return list, total, err
}
