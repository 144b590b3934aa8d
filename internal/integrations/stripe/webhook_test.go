package stripe

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test_secret"

func signPayload(payload []byte, ts time.Time, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestVerifySignature_Valid(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	now := time.Now()
	header := signPayload(payload, now, testSecret)

	err := VerifySignature(payload, header, testSecret, DefaultTolerance, now)
	assert.NoError(t, err)
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	now := time.Now()
	header := signPayload(payload, now, "whsec_other")

	err := VerifySignature(payload, header, testSecret, DefaultTolerance, now)
	assert.Error(t, err)
}

func TestVerifySignature_TamperedPayload(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	now := time.Now()
	header := signPayload(payload, now, testSecret)

	err := VerifySignature([]byte(`{"id":"evt_2"}`), header, testSecret, DefaultTolerance, now)
	assert.Error(t, err)
}

func TestVerifySignature_StaleTimestamp(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	signed := time.Now().Add(-10 * time.Minute)
	header := signPayload(payload, signed, testSecret)

	err := VerifySignature(payload, header, testSecret, DefaultTolerance, time.Now())
	assert.Error(t, err)
}

func TestVerifySignature_MalformedHeader(t *testing.T) {
	err := VerifySignature([]byte("{}"), "garbage", testSecret, DefaultTolerance, time.Now())
	assert.Error(t, err)
}

func TestParseEvent(t *testing.T) {
	payload := []byte(`{"id":"evt_9","type":"checkout.session.completed","data":{"object":{"id":"cs_1"}}}`)
	header := signPayload(payload, time.Now(), testSecret)

	event, err := ParseEvent(payload, header, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "checkout.session.completed", event.Type)
	assert.JSONEq(t, `{"id":"cs_1"}`, string(event.Data.Object))
}
