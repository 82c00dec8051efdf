package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"net/url"
	"regexp"
	"strings"

	"github.com/piresc/dispatch/internal/pkg/constants"
)

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9_%+\-]([a-zA-Z0-9._%+\-]*[a-zA-Z0-9_%+\-])?@[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)
	nonAlnumRegex = regexp.MustCompile(`[^A-Z0-9]`)
	pinRegex      = regexp.MustCompile(`^[0-9]{4,6}$`)
)

// GenerateRandomHex returns a hex string encoding n random bytes
func GenerateRandomHex(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// GenerateSessionToken returns 256 bits of randomness as 64 hex characters
func GenerateSessionToken() (string, error) {
	return GenerateRandomHex(32)
}

// GenerateAPIKey returns a company API key of the form tk_<48 hex>
func GenerateAPIKey() (string, error) {
	key, err := GenerateRandomHex(24)
	if err != nil {
		return "", err
	}
	return constants.APIKeyPrefix + key, nil
}

// GenerateWebhookSecret returns a webhook signing secret
func GenerateWebhookSecret() (string, error) {
	secret, err := GenerateRandomHex(32)
	if err != nil {
		return "", err
	}
	return constants.WebhookSecretPrefix + secret, nil
}

// GenerateCompanyCode builds a 6 character join code: up to 3 letters of the
// company name followed by random characters.
func GenerateCompanyCode(name string) (string, error) {
	prefix := nonAlnumRegex.ReplaceAllString(strings.ToUpper(name), "")
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}

	var b strings.Builder
	b.WriteString(prefix)
	max := big.NewInt(int64(len(codeAlphabet)))
	for b.Len() < 6 {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate company code: %w", err)
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// IsValidEmail checks if a string is a valid email address
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPin checks that a PIN is 4 to 6 digits
func IsValidPin(pin string) bool {
	return pinRegex.MatchString(pin)
}

// MaskPhoneNumber masks a phone number, keeping only the last 4 digits visible
func MaskPhoneNumber(phone string) string {
	clean := NormalizePhone(phone)
	clean = strings.TrimPrefix(clean, "+")
	if len(clean) <= 4 {
		return clean
	}
	return strings.Repeat("*", len(clean)-4) + clean[len(clean)-4:]
}

// IsValidHTTPURL checks for an absolute http or https URL with a host
func IsValidHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
