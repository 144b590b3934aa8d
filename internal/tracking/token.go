package tracking

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewTrackingID returns an unguessable opaque token: 128 bits of
// randomness, hex-encoded to 32 characters.
func NewTrackingID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating tracking id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
