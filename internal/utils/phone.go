package utils

import (
	"regexp"
	"strings"
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// NormalizePhone strips spaces, dashes, dots and parentheses, keeping a
// leading plus sign.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	var b strings.Builder
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidPhoneNumber checks a normalized phone number
func IsValidPhoneNumber(phone string) bool {
	return phoneRegex.MatchString(NormalizePhone(phone))
}
