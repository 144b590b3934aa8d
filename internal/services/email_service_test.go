package services

import (
	"testing"

	"outreachai_backend/internal/apperrors"
	"outreachai_backend/internal/dto"
	"outreachai_backend/internal/models"
	"outreachai_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmailRepo struct {
	byID    map[string]*models.GeneratedEmail
	updated []string
	deleted []string
}

func newFakeEmailRepo() *fakeEmailRepo {
	return &fakeEmailRepo{byID: map[string]*models.GeneratedEmail{}}
}

func (f *fakeEmailRepo) Create(email *models.GeneratedEmail) error {
	f.byID[email.ID] = email
	return nil
}

func (f *fakeEmailRepo) FindByIDForUser(id, userID string) (*models.GeneratedEmail, error) {
	mail, ok := f.byID[id]
	if !ok || mail.UserID != userID {
		return nil, repositories.ErrEmailNotFound
	}
	copied := *mail
	return &copied, nil
}

func (f *fakeEmailRepo) FindByTrackingID(trackingID string) (*models.GeneratedEmail, error) {
	for _, mail := range f.byID {
		if mail.TrackingID == trackingID {
			return mail, nil
		}
	}
	return nil, repositories.ErrEmailNotFound
}

func (f *fakeEmailRepo) ListByUser(userID string, status models.EmailStatus, page, pageSize int) ([]models.GeneratedEmail, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmailRepo) ListByRecipientForUser(recipientID, userID string) ([]models.GeneratedEmail, error) {
	return nil, nil
}

func (f *fakeEmailRepo) Update(email *models.GeneratedEmail) error {
	f.byID[email.ID] = email
	f.updated = append(f.updated, email.ID)
	return nil
}

func (f *fakeEmailRepo) Delete(id, userID string) error {
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeEmailRepo) CreateAttachment(att *models.EmailAttachment) error { return nil }
func (f *fakeEmailRepo) CountByUser(userID string) (int64, error)           { return 0, nil }
func (f *fakeEmailRepo) CountSentByUser(userID string) (int64, error)       { return 0, nil }
func (f *fakeEmailRepo) CountSentAll() (int64, error)                       { return 0, nil }

func strptr(s string) *string { return &s }

func TestEmailUpdate_SentEmailIsImmutable(t *testing.T) {
	emails := newFakeEmailRepo()
	emails.byID["mail-1"] = &models.GeneratedEmail{
		BaseModel: models.BaseModel{ID: "mail-1"},
		UserID:    "user-1",
		Subject:   "Original",
		Status:    models.EmailStatusSent,
	}
	svc := &emailService{emails: emails}

	_, err := svc.Update("mail-1", "user-1", &dto.UpdateEmailRequest{Subject: strptr("New")})
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrEmailAlreadySent.Code, appErr.Code)
	assert.Empty(t, emails.updated)
	assert.Equal(t, "Original", emails.byID["mail-1"].Subject)
}

func TestEmailDelete_SentEmailIsKept(t *testing.T) {
	emails := newFakeEmailRepo()
	emails.byID["mail-1"] = &models.GeneratedEmail{
		BaseModel: models.BaseModel{ID: "mail-1"},
		UserID:    "user-1",
		Status:    models.EmailStatusSent,
	}
	svc := &emailService{emails: emails}

	err := svc.Delete("mail-1", "user-1")
	require.Error(t, err)
	assert.Empty(t, emails.deleted)
}

func TestEmailUpdate_DraftPatchesOnlyProvidedFields(t *testing.T) {
	emails := newFakeEmailRepo()
	emails.byID["mail-1"] = &models.GeneratedEmail{
		BaseModel: models.BaseModel{ID: "mail-1"},
		UserID:    "user-1",
		Subject:   "Original",
		BodyHTML:  "<p>hi</p>",
		BodyText:  "hi",
		Status:    models.EmailStatusDraft,
	}
	svc := &emailService{emails: emails}

	resp, err := svc.Update("mail-1", "user-1", &dto.UpdateEmailRequest{Subject: strptr("Revised")})
	require.NoError(t, err)

	assert.Equal(t, "Revised", resp.Subject)
	assert.Equal(t, "<p>hi</p>", emails.byID["mail-1"].BodyHTML)
	assert.Equal(t, "hi", emails.byID["mail-1"].BodyText)
}

func TestEmailUpdate_CrossUserIsNotFound(t *testing.T) {
	emails := newFakeEmailRepo()
	emails.byID["mail-1"] = &models.GeneratedEmail{
		BaseModel: models.BaseModel{ID: "mail-1"},
		UserID:    "user-1",
		Status:    models.EmailStatusDraft,
	}
	svc := &emailService{emails: emails}

	_, err := svc.Update("mail-1", "user-2", &dto.UpdateEmailRequest{Subject: strptr("x")})
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestSplitDraft(t *testing.T) {
	cases := []struct {
		name        string
		raw         string
		wantSubject string
		wantBody    string
	}{
		{
			name:        "subject line then body",
			raw:         "Subject: Quick question\n\nHi Dana,\n\nShort note.",
			wantSubject: "Quick question",
			wantBody:    "Hi Dana,\n\nShort note.",
		},
		{
			name:        "case-insensitive prefix",
			raw:         "SUBJECT: Hello\nBody here",
			wantSubject: "Hello",
			wantBody:    "Body here",
		},
		{
			name:        "no subject prefix falls back",
			raw:         "Hi Dana,\n\nJust the body.",
			wantSubject: draftSubjectFallback,
			wantBody:    "Hi Dana,\n\nJust the body.",
		},
		{
			name:        "bare subject prefix is consumed, subject falls back",
			raw:         "Subject:\nBody line",
			wantSubject: draftSubjectFallback,
			wantBody:    "Body line",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			subject, body := splitDraft(tc.raw)
			assert.Equal(t, tc.wantSubject, subject)
			assert.Equal(t, tc.wantBody, body)
		})
	}
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "Hello there", stripTags("<p>Hello <b>there</b></p>"))
	assert.Equal(t, "plain", stripTags("plain"))
	assert.Equal(t, "", stripTags("<br/><img src=\"x\"/>"))
}
