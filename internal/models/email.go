package models

import "time"

// GeneratedEmail is a drafted or sent outreach message. TrackingID is
// assigned once at send time; Gmail ids are filled in after a
// successful send through the Gmail API.
type GeneratedEmail struct {
	BaseModel
	UserID      string      `gorm:"not null;index"`
	RecipientID string      `gorm:"not null;index"`
	Subject     string      `gorm:"not null"`
	BodyHTML    string      `gorm:"type:text"`
	BodyText    string      `gorm:"type:text"`
	Status      EmailStatus `gorm:"type:varchar(10);default:'draft'"`
	// Assigned at send time; drafts carry the empty value, so
	// uniqueness is only enforced once an id exists.
	TrackingID string `gorm:"index:idx_generated_emails_tracking_id,unique,where:tracking_id <> ''"`
	Provider    EmailProvider
	GmailThreadID  string
	GmailMessageID string
	SentAt         *time.Time

	// Relations
	Recipient   *Recipient        `gorm:"foreignKey:RecipientID"`
	Attachments []EmailAttachment `gorm:"foreignKey:EmailID"`
}

type EmailAttachment struct {
	BaseModel
	EmailID     string `gorm:"not null;index"`
	DisplayName string `gorm:"not null"`
	StoredName  string `gorm:"not null;uniqueIndex"`
	ContentType string
	SizeBytes   int64
}

// IsSent reports whether the email has left draft state. Sent emails
// are immutable.
func (e *GeneratedEmail) IsSent() bool {
	return e.Status == EmailStatusSent
}
