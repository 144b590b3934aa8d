package routes

import (
	"outreachai_backend/internal/handlers"
	"outreachai_backend/internal/middleware"
	"outreachai_backend/internal/models"
	"outreachai_backend/internal/tracking"

	"github.com/gin-gonic/gin"
)

// Setup registers every route on the engine.
func Setup(r *gin.Engine, h *handlers.Container) {
	r.GET("/healthz", handlers.Health)

	// Public tracking endpoints embedded in outgoing mail.
	r.GET(tracking.OpenPath+"/:id", h.Tracking.Open)
	r.GET(tracking.ClickPath+"/:id", h.Tracking.Click)

	// Authentication.
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refresh", h.Auth.Refresh)
		authGroup.POST("/logout", h.Auth.Logout)
		authGroup.GET("/verify", h.Auth.Verify)
		authGroup.POST("/password-reset/request", h.Auth.RequestPasswordReset)
		authGroup.POST("/password-reset/confirm", h.Auth.ResetPassword)
		authGroup.GET("/gmail/callback", h.Gmail.Callback)
	}

	api := r.Group("/api/v1")

	// Provider callbacks that cannot carry a bearer token.
	api.GET("/billing/paypal/capture", h.Billing.CapturePayPalOrder)
	api.POST("/billing/stripe/webhook", h.Billing.StripeWebhook)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/me", h.User.Me)
		authed.POST("/me/change-password", h.Auth.ChangePassword)
		authed.PUT("/me/smtp", h.User.UpdateSMTPSettings)
		authed.DELETE("/me/gmail", h.User.DisconnectGmail)

		authed.GET("/profile", h.Profile.Get)
		authed.PUT("/profile", h.Profile.Update)

		authed.POST("/documents", h.Document.Upload)
		authed.GET("/documents", h.Document.List)
		authed.GET("/documents/:id", h.Document.Get)
		authed.GET("/documents/:id/download", h.Document.Download)
		authed.DELETE("/documents/:id", h.Document.Delete)

		authed.POST("/recipients", h.Recipient.Create)
		authed.GET("/recipients", h.Recipient.List)
		authed.GET("/recipients/:id", h.Recipient.Get)
		authed.PUT("/recipients/:id", h.Recipient.Update)
		authed.DELETE("/recipients/:id", h.Recipient.Delete)
		authed.GET("/recipients/:id/emails", h.Recipient.Emails)

		authed.POST("/emails/generate", h.Email.Generate)
		authed.GET("/emails", h.Email.List)
		authed.POST("/emails/bulk-send", h.Email.BulkSend)
		authed.GET("/emails/:id", h.Email.Get)
		authed.PUT("/emails/:id", h.Email.Update)
		authed.DELETE("/emails/:id", h.Email.Delete)
		authed.POST("/emails/:id/attachments", h.Email.AddAttachment)
		authed.POST("/emails/:id/send", h.Email.Send)
		authed.POST("/emails/:id/reply", h.Email.Reply)
		authed.GET("/emails/:id/thread", h.Email.Thread)
		authed.GET("/emails/:id/analytics", h.Analytics.EmailAnalytics)

		authed.GET("/analytics", h.Analytics.UserAnalytics)
		authed.GET("/diagnostics/tracking", h.Analytics.TrackingDiagnostics)

		authed.GET("/gmail/connect", h.Gmail.Connect)

		authed.POST("/billing/paypal/orders", h.Billing.CreatePayPalOrder)
		authed.POST("/billing/stripe/checkout", h.Billing.CreateStripeCheckout)
		authed.POST("/billing/promo/validate", h.Billing.ValidatePromo)
		authed.GET("/billing/subscription", h.Billing.GetSubscription)
		authed.GET("/billing/transactions", h.Billing.ListTransactions)

		authed.GET("/announcements", h.Support.ListAnnouncements)
		authed.POST("/feedback", h.Support.CreateFeedback)
		authed.POST("/tickets", h.Support.CreateTicket)
		authed.GET("/tickets", h.Support.ListOwnTickets)
		authed.GET("/tickets/:id", h.Support.GetOwnTicket)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("/users", h.User.List)
		admin.PUT("/users/:id/status", h.User.UpdateStatus)

		admin.GET("/announcements", h.Admin.ListAnnouncements)
		admin.POST("/announcements", h.Admin.CreateAnnouncement)
		admin.PUT("/announcements/:id", h.Admin.UpdateAnnouncement)
		admin.DELETE("/announcements/:id", h.Admin.DeleteAnnouncement)

		admin.GET("/promo-codes", h.Billing.ListPromoCodes)
		admin.POST("/promo-codes", h.Billing.CreatePromoCode)
		admin.PUT("/promo-codes/:id", h.Billing.UpdatePromoCode)
		admin.DELETE("/promo-codes/:id", h.Billing.DeletePromoCode)

		admin.GET("/tickets", h.Support.AdminListTickets)
		admin.PUT("/tickets/:id/reply", h.Support.AdminReplyTicket)
		admin.GET("/feedback", h.Support.AdminListFeedback)

		admin.GET("/settings", h.Admin.GetSettings)
		admin.PUT("/settings", h.Admin.UpdateSetting)
		admin.GET("/audit-log", h.Admin.ListAuditLog)
		admin.GET("/analytics", h.Admin.PlatformAnalytics)
	}
}
