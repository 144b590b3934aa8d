package models

import (
	"time"

	"gorm.io/datatypes"
)

type Announcement struct {
	BaseModel
	Title       string `gorm:"not null"`
	Body        string `gorm:"type:text"`
	IsActive    bool   `gorm:"default:true"`
	PublishedAt *time.Time
}

type SupportTicket struct {
	BaseModel
	UserID     string       `gorm:"not null;index"`
	Subject    string       `gorm:"not null"`
	Body       string       `gorm:"type:text"`
	Status     TicketStatus `gorm:"type:varchar(20);default:'open'"`
	AdminReply string       `gorm:"type:text"`
}

type Feedback struct {
	BaseModel
	UserID  string `gorm:"not null;index"`
	Rating  int    `gorm:"not null"`
	Comment string `gorm:"type:text"`
}

// AuditLog rows are written best-effort on admin mutations. A failed
// write must never abort the operation being audited.
type AuditLog struct {
	BaseModel
	ActorID  string `gorm:"index"`
	Action   string `gorm:"not null"`
	Entity   string
	EntityID string
	Detail   datatypes.JSON `gorm:"type:jsonb"`
}

// AppSetting holds one recognized configuration key. The settings
// service enumerates the accepted keys and their value shapes; unknown
// keys are rejected at the API boundary.
type AppSetting struct {
	BaseModel
	Key   string         `gorm:"uniqueIndex;not null"`
	Value datatypes.JSON `gorm:"type:jsonb"`
}
