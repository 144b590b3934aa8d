package auth

import (
	"testing"

	"outreachai_backend/internal/config"
	"outreachai_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTLMinutes = 15
	config.AppConfig = cfg
}

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: "user-1"},
		Role:      models.UserRoleUser,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	testConfig("test-secret")

	token, err := GenerateToken(testUser())
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, models.UserRoleUser, claims.Role)
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	testConfig("secret-a")
	token, err := GenerateToken(testUser())
	require.NoError(t, err)

	testConfig("secret-b")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_RejectsGarbage(t *testing.T) {
	testConfig("test-secret")
	_, err := ParseToken("not.a.jwt")
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("correct horse battery", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long enough password"))
}
