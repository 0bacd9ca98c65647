package utils

import (
	"html"
	"strings"
	"unicode"
)

// SanitizeString trims whitespace and escapes HTML entities.
func SanitizeString(input string) string {
	return html.EscapeString(strings.TrimSpace(input))
}

// SanitizeEmail normalizes email input: lowercase, trimmed, control
// characters removed. Signup, login and forgot-password all go through
// this, so lookups always see the same form.
func SanitizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	var result strings.Builder
	for _, r := range email {
		if unicode.IsPrint(r) && !unicode.IsSpace(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}
