package models

import "time"

// EmailOpen and LinkClick are append-only event rows keyed by the
// email's tracking identifier. They are inserted by the public pixel
// and redirect endpoints and never updated.

type EmailOpen struct {
	BaseModel
	TrackingID string `gorm:"not null;index"`
	IP         string
	UserAgent  string
	OpenedAt   time.Time `gorm:"default:now()"`
}

type LinkClick struct {
	BaseModel
	TrackingID string `gorm:"not null;index"`
	URL        string `gorm:"type:text"`
	IP         string
	UserAgent  string
	ClickedAt  time.Time `gorm:"default:now()"`
}
