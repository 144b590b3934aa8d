package services

import (
	"outreachai_backend/internal/apperrors"
	"outreachai_backend/internal/dto"
	"outreachai_backend/internal/repositories"
)

type AnalyticsService interface {
	EmailAnalytics(emailID, userID string) (*dto.EmailAnalyticsResponse, error)
	UserAnalytics(userID string) (*dto.UserAnalyticsResponse, error)
	PlatformAnalytics() (*dto.PlatformAnalyticsResponse, error)
}

type analyticsService struct {
	emails        repositories.EmailRepository
	recipients    repositories.RecipientRepository
	events        repositories.TrackingRepository
	users         repositories.UserRepository
	subscriptions repositories.SubscriptionRepository
}

func NewAnalyticsService(
	emails repositories.EmailRepository,
	recipients repositories.RecipientRepository,
	events repositories.TrackingRepository,
	users repositories.UserRepository,
	subscriptions repositories.SubscriptionRepository,
) AnalyticsService {
	return &analyticsService{
		emails:        emails,
		recipients:    recipients,
		events:        events,
		users:         users,
		subscriptions: subscriptions,
	}
}

func (s *analyticsService) EmailAnalytics(emailID, userID string) (*dto.EmailAnalyticsResponse, error) {
	mail, err := s.emails.FindByIDForUser(emailID, userID)
	if err != nil {
		return nil, apperrors.NotFound("Email")
	}

	resp := &dto.EmailAnalyticsResponse{
		EmailID:    mail.ID,
		TrackingID: mail.TrackingID,
	}

	if mail.TrackingID == "" {
		// Drafts have no events yet.
		return resp, nil
	}

	opens, err := s.events.ListOpens(mail.TrackingID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	clicks, err := s.events.ListClicks(mail.TrackingID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp.OpenCount = int64(len(opens))
	resp.ClickCount = int64(len(clicks))

	// ListOpens returns newest first.
	if len(opens) > 0 {
		last := opens[0].OpenedAt
		first := opens[len(opens)-1].OpenedAt
		resp.FirstOpen = &first
		resp.LastOpen = &last
	}

	for _, click := range clicks {
		resp.Clicks = append(resp.Clicks, dto.ClickInfo{
			URL:       click.URL,
			ClickedAt: click.ClickedAt,
		})
	}

	return resp, nil
}

func (s *analyticsService) UserAnalytics(userID string) (*dto.UserAnalyticsResponse, error) {
	total, err := s.emails.CountByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	sent, err := s.emails.CountSentByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	opens, err := s.events.CountOpensForUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	clicks, err := s.events.CountClicksForUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	opened, err := s.events.CountOpenedEmailsForUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	contacts, err := s.recipients.CountByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.UserAnalyticsResponse{
		TotalEmails:   total,
		SentEmails:    sent,
		TotalOpens:    opens,
		TotalClicks:   clicks,
		OpenedEmails:  opened,
		TotalContacts: contacts,
	}
	if sent > 0 {
		resp.OpenRate = float64(opened) / float64(sent)
	}
	return resp, nil
}

func (s *analyticsService) PlatformAnalytics() (*dto.PlatformAnalyticsResponse, error) {
	users, err := s.users.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	active, err := s.subscriptions.CountActive()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	sent, err := s.emails.CountSentAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	revenue, err := s.subscriptions.SumCompletedRevenue()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	opens, err := s.events.CountAllOpens()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	clicks, err := s.events.CountAllClicks()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PlatformAnalyticsResponse{
		TotalUsers:          users,
		ActiveSubscriptions: active,
		TotalEmailsSent:     sent,
		TotalRevenueCents:   revenue,
		OpenEvents:          opens,
		ClickEvents:         clicks,
	}, nil
}
