package models

type Recipient struct {
	BaseModel
	UserID       string `gorm:"not null;index"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"not null"`
	Organization string
	Role         string
	Notes        string `gorm:"type:text"`

	// Relations
	Emails []GeneratedEmail `gorm:"foreignKey:RecipientID"`
}
