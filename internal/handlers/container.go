package handlers

import (
	"outreachai_backend/internal/config"
	"outreachai_backend/internal/services"
	"outreachai_backend/internal/validator"
)

// Container groups every HTTP handler for route registration.
type Container struct {
	Auth      *AuthHandler
	User      *UserHandler
	Profile   *ProfileHandler
	Document  *DocumentHandler
	Recipient *RecipientHandler
	Email     *EmailHandler
	Tracking  *TrackingHandler
	Billing   *BillingHandler
	Gmail     *GmailHandler
	Support   *SupportHandler
	Admin     *AdminHandler
	Analytics *AnalyticsHandler
}

func NewContainer(svcs *services.Container, v *validator.Validator, cfg *config.Config) *Container {
	base := NewBaseHandler(v)

	return &Container{
		Auth:      NewAuthHandler(base, svcs.Auth),
		User:      NewUserHandler(base, svcs.User),
		Profile:   NewProfileHandler(base, svcs.Profile),
		Document:  NewDocumentHandler(base, svcs.Document, cfg),
		Recipient: NewRecipientHandler(base, svcs.Recipient, svcs.Email),
		Email:     NewEmailHandler(base, svcs.Email),
		Tracking:  NewTrackingHandler(svcs.Tracking),
		Billing:   NewBillingHandler(base, svcs.Billing),
		Gmail:     NewGmailHandler(base, svcs.Gmail),
		Support:   NewSupportHandler(base, svcs.Support, svcs.Announcement),
		Admin:     NewAdminHandler(base, svcs.Announcement, svcs.Settings, svcs.Audit, svcs.Analytics),
		Analytics: NewAnalyticsHandler(base, svcs.Analytics, svcs.Settings, cfg),
	}
}
