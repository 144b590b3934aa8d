package services

import (
	"testing"

	"outreachai_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

type fakeTrackingRepo struct {
	opens  []models.EmailOpen
	clicks []models.LinkClick
}

func (f *fakeTrackingRepo) CreateOpen(open *models.EmailOpen) error {
	f.opens = append(f.opens, *open)
	return nil
}

func (f *fakeTrackingRepo) CreateClick(click *models.LinkClick) error {
	f.clicks = append(f.clicks, *click)
	return nil
}

func (f *fakeTrackingRepo) CountOpens(trackingID string) (int64, error)   { return 0, nil }
func (f *fakeTrackingRepo) CountClicks(trackingID string) (int64, error)  { return 0, nil }
func (f *fakeTrackingRepo) ListOpens(trackingID string) ([]models.EmailOpen, error) {
	return nil, nil
}
func (f *fakeTrackingRepo) ListClicks(trackingID string) ([]models.LinkClick, error) {
	return nil, nil
}
func (f *fakeTrackingRepo) CountOpensForUser(userID string) (int64, error)        { return 0, nil }
func (f *fakeTrackingRepo) CountClicksForUser(userID string) (int64, error)       { return 0, nil }
func (f *fakeTrackingRepo) CountOpenedEmailsForUser(userID string) (int64, error) { return 0, nil }
func (f *fakeTrackingRepo) CountAllOpens() (int64, error)                         { return 0, nil }
func (f *fakeTrackingRepo) CountAllClicks() (int64, error)                        { return 0, nil }

func TestRecordOpen_SentEmailGetsRow(t *testing.T) {
	emails := newFakeEmailRepo()
	emails.byID["mail-1"] = &models.GeneratedEmail{
		BaseModel:  models.BaseModel{ID: "mail-1"},
		UserID:     "user-1",
		Status:     models.EmailStatusSent,
		TrackingID: "trk-1",
	}
	events := &fakeTrackingRepo{}
	svc := NewTrackingService(events, emails)

	svc.RecordOpen("trk-1", "203.0.113.9", "curl/8")

	assert.Len(t, events.opens, 1)
	assert.Equal(t, "trk-1", events.opens[0].TrackingID)
}

func TestRecordOpen_UnknownIDIsSilentlyDropped(t *testing.T) {
	events := &fakeTrackingRepo{}
	svc := NewTrackingService(events, newFakeEmailRepo())

	svc.RecordOpen("never-issued", "203.0.113.9", "curl/8")

	assert.Empty(t, events.opens)
}

func TestRecordClick_DraftEmailIsIgnored(t *testing.T) {
	emails := newFakeEmailRepo()
	emails.byID["mail-1"] = &models.GeneratedEmail{
		BaseModel:  models.BaseModel{ID: "mail-1"},
		UserID:     "user-1",
		Status:     models.EmailStatusDraft,
		TrackingID: "trk-1",
	}
	events := &fakeTrackingRepo{}
	svc := NewTrackingService(events, emails)

	svc.RecordClick("trk-1", "https://example.com", "203.0.113.9", "curl/8")

	assert.Empty(t, events.clicks)
}
