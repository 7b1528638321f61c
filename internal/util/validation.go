package util

import (
	"regexp"
	"strings"
)

var (
	emailRegex  = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,4}$`)
	phoneRegex  = regexp.MustCompile(`^[0-9]{10}$`)
	amountRegex = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)
)

// NormalizeEmail trims and lower-cases an email address. All storage and
// comparison happens on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// IsValidAmount accepts non-negative decimal amounts with up to two
// fractional digits, e.g. "100" or "50.00".
func IsValidAmount(amount string) bool {
	return amountRegex.MatchString(amount)
}
