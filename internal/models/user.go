package models

import "time"

type User struct {
	BaseModel
	Email             string     `gorm:"uniqueIndex;not null"`
	PasswordHash      string     `gorm:"not null"`
	Name              string
	Role              UserRole   `gorm:"type:varchar(20);not null;default:'user'"`
	Status            UserStatus `gorm:"type:varchar(20);default:'active'"`
	IsVerified        bool       `gorm:"default:false"`
	VerificationToken string
	ResetToken        string
	ResetTokenExp     *time.Time

	// Gmail OAuth connection (set by the callback handler)
	GmailEmail        string
	GmailRefreshToken string

	// SMTP app-password fallback for users without a Gmail connection
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	// Relations
	Profile       *Profile       `gorm:"foreignKey:UserID"`
	Subscription  *Subscription  `gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}

// HasGmailConnection reports whether outbound mail can go through the
// Gmail API instead of plain SMTP.
func (u *User) HasGmailConnection() bool {
	return u.GmailRefreshToken != ""
}
