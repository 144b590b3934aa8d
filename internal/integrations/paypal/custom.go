package paypal

import (
	"encoding/json"
	"errors"
	"strings"
)

// CustomField is the payload the application smuggles through PayPal's
// custom_id: the paying user's identity plus an optional promo code.
type CustomField struct {
	UserID    string `json:"uid"`
	PromoCode string `json:"promo,omitempty"`
}

// EncodeCustomField serializes the current JSON envelope format.
func EncodeCustomField(userID, promoCode string) (string, error) {
	if userID == "" {
		return "", errors.New("custom field requires a user id")
	}
	data, err := json.Marshal(CustomField{UserID: userID, PromoCode: promoCode})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeCustomField reads a custom_id in either supported format:
// the current JSON envelope {"uid":...,"promo":...} or the legacy
// bare user-id string written by older order-creation code.
func DecodeCustomField(raw string) (CustomField, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return CustomField{}, errors.New("empty custom field")
	}

	if strings.HasPrefix(raw, "{") {
		var cf CustomField
		if err := json.Unmarshal([]byte(raw), &cf); err != nil {
			return CustomField{}, err
		}
		if cf.UserID == "" {
			return CustomField{}, errors.New("custom field envelope missing uid")
		}
		return cf, nil
	}

	// Legacy format: the bare user id.
	return CustomField{UserID: raw}, nil
}
