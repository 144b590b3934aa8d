package services

import (
	"outreachai_backend/internal/logger"
	"outreachai_backend/internal/models"
	"outreachai_backend/internal/repositories"
)

type TrackingService interface {
	// RecordOpen and RecordClick are best effort: unknown ids and
	// storage failures are logged and swallowed so the public
	// endpoints always answer.
	RecordOpen(trackingID, ip, userAgent string)
	RecordClick(trackingID, url, ip, userAgent string)
}

type trackingService struct {
	events repositories.TrackingRepository
	emails repositories.EmailRepository
}

func NewTrackingService(events repositories.TrackingRepository, emails repositories.EmailRepository) TrackingService {
	return &trackingService{events: events, emails: emails}
}

func (s *trackingService) RecordOpen(trackingID, ip, userAgent string) {
	mail, err := s.emails.FindByTrackingID(trackingID)
	if err != nil || !mail.IsSent() {
		// Ids that were never issued still get the pixel; no row.
		return
	}

	open := &models.EmailOpen{
		TrackingID: trackingID,
		IP:         ip,
		UserAgent:  userAgent,
	}
	if err := s.events.CreateOpen(open); err != nil {
		logger.Warn("failed to record email open", "tracking_id", trackingID, "error", err)
	}
}

func (s *trackingService) RecordClick(trackingID, url, ip, userAgent string) {
	mail, err := s.emails.FindByTrackingID(trackingID)
	if err != nil || !mail.IsSent() {
		return
	}

	click := &models.LinkClick{
		TrackingID: trackingID,
		URL:        url,
		IP:         ip,
		UserAgent:  userAgent,
	}
	if err := s.events.CreateClick(click); err != nil {
		logger.Warn("failed to record link click", "tracking_id", trackingID, "error", err)
	}
}
