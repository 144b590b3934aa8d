package models

type UserRole string
type UserStatus string
type DocumentType string
type EmailStatus string
type SubscriptionStatus string
type PaymentStatus string
type PromoType string
type TicketStatus string
type EmailProvider string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"

	DocumentTypeCV          DocumentType = "cv"
	DocumentTypeTranscript  DocumentType = "transcript"
	DocumentTypeCoverLetter DocumentType = "cover_letter"
	DocumentTypeOther       DocumentType = "other"

	EmailStatusDraft EmailStatus = "draft"
	EmailStatusSent  EmailStatus = "sent"

	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusInactive SubscriptionStatus = "inactive"

	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"

	PromoTypePercent  PromoType = "percent"
	PromoTypeFixed    PromoType = "fixed"
	PromoTypeFreeDays PromoType = "free_days"

	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusClosed     TicketStatus = "closed"

	EmailProviderGmail EmailProvider = "gmail"
	EmailProviderSMTP  EmailProvider = "smtp"
)
