package auth

import (
	"regexp"
	"strings"
)

// emailPattern is intentionally loose: one @, no whitespace, a dot in the
// domain. Full RFC 5322 validation buys nothing here.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail lowercases and trims an email for storage and lookup.
// Email uniqueness is enforced on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether the string looks like an email address.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
