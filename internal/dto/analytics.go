package dto

import "time"

type EmailAnalyticsResponse struct {
	EmailID    string      `json:"email_id"`
	TrackingID string      `json:"tracking_id"`
	OpenCount  int64       `json:"open_count"`
	ClickCount int64       `json:"click_count"`
	FirstOpen  *time.Time  `json:"first_open,omitempty"`
	LastOpen   *time.Time  `json:"last_open,omitempty"`
	Clicks     []ClickInfo `json:"clicks,omitempty"`
}

type ClickInfo struct {
	URL       string    `json:"url"`
	ClickedAt time.Time `json:"clicked_at"`
}

type UserAnalyticsResponse struct {
	TotalEmails   int64   `json:"total_emails"`
	SentEmails    int64   `json:"sent_emails"`
	TotalOpens    int64   `json:"total_opens"`
	TotalClicks   int64   `json:"total_clicks"`
	OpenedEmails  int64   `json:"opened_emails"`
	OpenRate      float64 `json:"open_rate"`
	TotalContacts int64   `json:"total_contacts"`
}

type PlatformAnalyticsResponse struct {
	TotalUsers          int64 `json:"total_users"`
	ActiveSubscriptions int64 `json:"active_subscriptions"`
	TotalEmailsSent     int64 `json:"total_emails_sent"`
	TotalRevenueCents   int64 `json:"total_revenue_cents"`
	OpenEvents          int64 `json:"open_events"`
	ClickEvents         int64 `json:"click_events"`
}

type TrackingDiagnosticsResponse struct {
	BaseURL string `json:"base_url"`
	Source  string `json:"source"`
}
