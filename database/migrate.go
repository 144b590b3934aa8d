package database

import (
	"outreachai_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates the uuid extension and auto-migrates every model.
// Order matters only for readability; GORM resolves foreign keys.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Profile{},
		&models.Document{},
		&models.Recipient{},
		&models.GeneratedEmail{},
		&models.EmailAttachment{},
		&models.EmailOpen{},
		&models.LinkClick{},
		&models.Subscription{},
		&models.PaymentTransaction{},
		&models.PromoCode{},
		&models.PromoCodeUse{},
		&models.Announcement{},
		&models.SupportTicket{},
		&models.Feedback{},
		&models.AuditLog{},
		&models.AppSetting{},
	)
}
