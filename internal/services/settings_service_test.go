package services

import (
	"testing"

	"outreachai_backend/internal/apperrors"
	"outreachai_backend/internal/models"
	"outreachai_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	rows map[string]*models.AppSetting
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{rows: map[string]*models.AppSetting{}}
}

func (f *fakeSettingsRepo) Get(key string) (*models.AppSetting, error) {
	row, ok := f.rows[key]
	if !ok {
		return nil, repositories.ErrSettingNotFound
	}
	return row, nil
}

func (f *fakeSettingsRepo) Upsert(setting *models.AppSetting) error {
	f.rows[setting.Key] = setting
	return nil
}

func (f *fakeSettingsRepo) All() ([]models.AppSetting, error) {
	var out []models.AppSetting
	for _, row := range f.rows {
		out = append(out, *row)
	}
	return out, nil
}

func TestSettingsSet_RejectsUnknownKey(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	err := svc.Set("totally_made_up", "value")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrUnknownSettingKey.Code, appErr.Code)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestSettingsSet_RejectsWrongValueShape(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	// ai_max_tokens is declared as an integer.
	err := svc.Set("ai_max_tokens", "lots")
	require.Error(t, err)

	// JSON numbers arrive as float64; fractions are not integers.
	err = svc.Set("ai_max_tokens", 12.5)
	require.Error(t, err)
}

func TestSettingsSet_AcceptsRecognizedKeys(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)

	require.NoError(t, svc.Set("ai_model", "gpt-4o"))
	require.NoError(t, svc.Set("bulk_send_delay_ms", float64(1500)))

	assert.Equal(t, "gpt-4o", svc.GetString("ai_model", "fallback"))
	assert.Equal(t, 1500, svc.GetInt("bulk_send_delay_ms", 0))
}

func TestSettingsGet_FallsBackWhenUnset(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	assert.Equal(t, "default-model", svc.GetString("ai_model", "default-model"))
	assert.Equal(t, 2000, svc.GetInt("bulk_send_delay_ms", 2000))
}
