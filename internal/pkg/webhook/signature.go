package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/piresc/dispatch/internal/pkg/constants"
)

// Sign returns the hex HMAC-SHA256 of payload under secret
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a "sha256=<hex>" signature header against payload in
// constant time. A bare hex value is accepted too.
func Verify(secret string, payload []byte, header string) bool {
	provided := strings.TrimPrefix(strings.TrimSpace(header), constants.SignaturePrefix)
	got, err := hex.DecodeString(provided)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hmac.Equal(got, mac.Sum(nil))
}
