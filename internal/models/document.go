package models

// Document is a user-uploaded file (CV, transcript, cover letter).
// The bytes live in storage under StoredName, which is generated
// server side and never derived from client input. DisplayName is what
// the user sees.
type Document struct {
	BaseModel
	UserID        string       `gorm:"not null;index"`
	Type          DocumentType `gorm:"type:varchar(20);not null"`
	DisplayName   string       `gorm:"not null"`
	StoredName    string       `gorm:"not null;uniqueIndex"`
	ContentType   string
	SizeBytes     int64
	ExtractedText string `gorm:"type:text"` // plain-text cache used for prompt building
}
