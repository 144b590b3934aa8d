package paypal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCustomField_JSONEnvelope(t *testing.T) {
	cf, err := DecodeCustomField(`{"uid":"5a1c0cde-9f0a-4f41-b6a3-0de6a7a5c001","promo":"LAUNCH20"}`)
	require.NoError(t, err)
	assert.Equal(t, "5a1c0cde-9f0a-4f41-b6a3-0de6a7a5c001", cf.UserID)
	assert.Equal(t, "LAUNCH20", cf.PromoCode)
}

func TestDecodeCustomField_JSONEnvelopeWithoutPromo(t *testing.T) {
	cf, err := DecodeCustomField(`{"uid":"user-123"}`)
	require.NoError(t, err)
	assert.Equal(t, "user-123", cf.UserID)
	assert.Empty(t, cf.PromoCode)
}

func TestDecodeCustomField_LegacyBareString(t *testing.T) {
	cf, err := DecodeCustomField("5a1c0cde-9f0a-4f41-b6a3-0de6a7a5c001")
	require.NoError(t, err)
	assert.Equal(t, "5a1c0cde-9f0a-4f41-b6a3-0de6a7a5c001", cf.UserID)
	assert.Empty(t, cf.PromoCode)
}

func TestDecodeCustomField_Empty(t *testing.T) {
	_, err := DecodeCustomField("   ")
	assert.Error(t, err)
}

func TestDecodeCustomField_EnvelopeMissingUID(t *testing.T) {
	_, err := DecodeCustomField(`{"promo":"LAUNCH20"}`)
	assert.Error(t, err)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	raw, err := EncodeCustomField("user-9", "WELCOME")
	require.NoError(t, err)

	cf, err := DecodeCustomField(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-9", cf.UserID)
	assert.Equal(t, "WELCOME", cf.PromoCode)
}
