package services

import (
	"outreachai_backend/internal/config"
	"outreachai_backend/internal/integrations/ai"
	"outreachai_backend/internal/integrations/gmail"
	"outreachai_backend/internal/integrations/paypal"
	"outreachai_backend/internal/integrations/stripe"
	"outreachai_backend/internal/pkg/email"
	"outreachai_backend/internal/repositories"
	"outreachai_backend/internal/storage"

	"gorm.io/gorm"
)

// Container wires every service with its repositories and integration
// clients. Built once at startup.
type Container struct {
	Auth          AuthService
	User          UserService
	Profile       ProfileService
	Document      DocumentService
	Recipient     RecipientService
	Email         EmailService
	Tracking      TrackingService
	Billing       BillingService
	Gmail         GmailService
	Announcement  AnnouncementService
	Support       SupportService
	Settings      SettingsService
	Audit         AuditService
	Analytics     AnalyticsService
	Subscriptions repositories.SubscriptionRepository
}

func NewContainer(db *gorm.DB, store storage.Storage, sender email.Sender, cfg *config.Config) *Container {
	users := repositories.NewUserRepository(db)
	profiles := repositories.NewProfileRepository(db)
	documents := repositories.NewDocumentRepository(db)
	recipients := repositories.NewRecipientRepository(db)
	emails := repositories.NewEmailRepository(db)
	events := repositories.NewTrackingRepository(db)
	subscriptions := repositories.NewSubscriptionRepository(db)
	promos := repositories.NewPromoRepository(db)
	announcements := repositories.NewAnnouncementRepository(db)
	support := repositories.NewSupportRepository(db)
	settings := repositories.NewSettingsRepository(db)
	audits := repositories.NewAuditRepository(db)

	oauth := gmail.NewOAuthProvider(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURL)
	aiClient := ai.NewClient(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model)
	paypalClient := paypal.NewClient(cfg.PayPal.BaseURL, cfg.PayPal.ClientID, cfg.PayPal.Secret)
	stripeClient := stripe.NewClient(cfg.Stripe.SecretKey)

	auditService := NewAuditService(audits)
	settingsService := NewSettingsService(settings)

	return &Container{
		Auth:      NewAuthService(users, sender, cfg),
		User:      NewUserService(users, auditService),
		Profile:   NewProfileService(profiles),
		Document:  NewDocumentService(documents, store),
		Recipient: NewRecipientService(recipients),
		Email: NewEmailService(
			emails, recipients, documents, profiles, users,
			settingsService, store, aiClient, oauth, cfg,
		),
		Tracking: NewTrackingService(events, emails),
		Billing: NewBillingService(
			db, subscriptions, promos, users,
			settingsService, auditService, paypalClient, stripeClient, cfg,
		),
		Gmail:         NewGmailService(users, oauth, cfg),
		Announcement:  NewAnnouncementService(announcements, auditService),
		Support:       NewSupportService(support, auditService),
		Settings:      settingsService,
		Audit:         auditService,
		Analytics:     NewAnalyticsService(emails, recipients, events, users, subscriptions),
		Subscriptions: subscriptions,
	}
}
