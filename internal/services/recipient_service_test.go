package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"outreachai_backend/internal/dto"
	"outreachai_backend/internal/models"
	"outreachai_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecipientRepo struct {
	created *models.Recipient
	byID    map[string]*models.Recipient
}

func newFakeRecipientRepo() *fakeRecipientRepo {
	return &fakeRecipientRepo{byID: map[string]*models.Recipient{}}
}

func (f *fakeRecipientRepo) Create(r *models.Recipient) error {
	r.ID = "rec-1"
	f.created = r
	f.byID[r.ID] = r
	return nil
}

func (f *fakeRecipientRepo) FindByIDForUser(id, userID string) (*models.Recipient, error) {
	r, ok := f.byID[id]
	if !ok || r.UserID != userID {
		return nil, repositories.ErrRecipientNotFound
	}
	return r, nil
}

func (f *fakeRecipientRepo) FindByIDsForUser(ids []string, userID string) ([]models.Recipient, error) {
	return nil, nil
}

func (f *fakeRecipientRepo) ListByUser(userID, query string, page, pageSize int) ([]models.Recipient, int64, error) {
	return nil, 0, nil
}

func (f *fakeRecipientRepo) CountByUser(userID string) (int64, error) { return 0, nil }

func (f *fakeRecipientRepo) Update(r *models.Recipient) error { return nil }

func (f *fakeRecipientRepo) Delete(id, userID string) error {
	if _, ok := f.byID[id]; !ok {
		return repositories.ErrRecipientNotFound
	}
	delete(f.byID, id)
	return nil
}

func TestRecipientCreate_TruncatesLongFields(t *testing.T) {
	repo := newFakeRecipientRepo()
	svc := NewRecipientService(repo)

	longName := strings.Repeat("n", 250)
	longEmail := strings.Repeat("e", 240) + "@example.com"
	longNotes := strings.Repeat("x", 3000)

	resp, err := svc.Create("user-1", &dto.CreateRecipientRequest{
		Name:  longName,
		Email: longEmail,
		Notes: longNotes,
	})
	require.NoError(t, err)

	assert.Len(t, repo.created.Name, 200)
	assert.Len(t, repo.created.Email, 200)
	assert.Len(t, repo.created.Notes, 2000)
	assert.Equal(t, longName[:200], resp.Name)
}

func TestRecipientCreate_TruncatesOnCharactersNotBytes(t *testing.T) {
	repo := newFakeRecipientRepo()
	svc := NewRecipientService(repo)

	// 250 two-byte runes; a byte slice at 200 would split a rune.
	cyrillicName := strings.Repeat("ж", 250)

	_, err := svc.Create("user-1", &dto.CreateRecipientRequest{
		Name:  cyrillicName,
		Email: "zh@example.com",
	})
	require.NoError(t, err)

	assert.True(t, utf8.ValidString(repo.created.Name))
	assert.Equal(t, 200, utf8.RuneCountInString(repo.created.Name))
	assert.Equal(t, strings.Repeat("ж", 200), repo.created.Name)
}

func TestRecipientCreate_ShortFieldsUnchanged(t *testing.T) {
	repo := newFakeRecipientRepo()
	svc := NewRecipientService(repo)

	resp, err := svc.Create("user-1", &dto.CreateRecipientRequest{
		Name:  "Dana Reviewer",
		Email: "dana@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "Dana Reviewer", resp.Name)
	assert.Equal(t, "dana@example.com", resp.Email)
}

func TestRecipientGet_CrossUserIsNotFound(t *testing.T) {
	repo := newFakeRecipientRepo()
	svc := NewRecipientService(repo)

	_, err := svc.Create("user-1", &dto.CreateRecipientRequest{
		Name:  "Dana",
		Email: "dana@example.com",
	})
	require.NoError(t, err)

	// Another user probing the same id sees a plain 404.
	_, err = svc.Get("rec-1", "user-2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
