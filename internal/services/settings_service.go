package services

import (
	"encoding/json"
	"fmt"

	"outreachai_backend/internal/apperrors"
	"outreachai_backend/internal/logger"
	"outreachai_backend/internal/models"
	"outreachai_backend/internal/repositories"

	"gorm.io/datatypes"
)

type settingKind int

const (
	settingString settingKind = iota
	settingInt
)

// settingSchema enumerates every key the settings API accepts, with
// its expected value shape. Anything outside this map is rejected.
var settingSchema = map[string]settingKind{
	"ai_model":           settingString,
	"ai_max_tokens":      settingInt,
	"bulk_send_delay_ms": settingInt,
	"app_base_url":       settingString,
	"plan_price_cents":   settingInt,
	"plan_currency":      settingString,
}

type SettingsService interface {
	All() (map[string]interface{}, error)
	Set(key string, value interface{}) error
	GetString(key, fallback string) string
	GetInt(key string, fallback int) int
}

type settingsService struct {
	settings repositories.SettingsRepository
}

func NewSettingsService(settings repositories.SettingsRepository) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) All() (map[string]interface{}, error) {
	rows, err := s.settings.All()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make(map[string]interface{}, len(rows))
	for _, row := range rows {
		var v interface{}
		if err := json.Unmarshal(row.Value, &v); err != nil {
			continue
		}
		out[row.Key] = v
	}
	return out, nil
}

func (s *settingsService) Set(key string, value interface{}) error {
	kind, ok := settingSchema[key]
	if !ok {
		return apperrors.ErrUnknownSettingKey.WithDetails(fmt.Sprintf("unrecognized key %q", key))
	}

	switch kind {
	case settingString:
		if _, ok := value.(string); !ok {
			return apperrors.NewBadRequestError(fmt.Sprintf("Setting %q expects a string value", key))
		}
	case settingInt:
		// JSON numbers arrive as float64; require a whole value.
		f, ok := value.(float64)
		if !ok || f != float64(int64(f)) {
			return apperrors.NewBadRequestError(fmt.Sprintf("Setting %q expects an integer value", key))
		}
		value = int64(f)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return apperrors.InternalError(err)
	}

	setting := &models.AppSetting{Key: key, Value: datatypes.JSON(raw)}
	if err := s.settings.Upsert(setting); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *settingsService) GetString(key, fallback string) string {
	row, err := s.settings.Get(key)
	if err != nil {
		return fallback
	}
	var v string
	if err := json.Unmarshal(row.Value, &v); err != nil {
		logger.Warn("setting has unexpected value shape", "key", key)
		return fallback
	}
	return v
}

func (s *settingsService) GetInt(key string, fallback int) int {
	row, err := s.settings.Get(key)
	if err != nil {
		return fallback
	}
	var v int
	if err := json.Unmarshal(row.Value, &v); err != nil {
		logger.Warn("setting has unexpected value shape", "key", key)
		return fallback
	}
	return v
}
