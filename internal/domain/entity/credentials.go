package entity

import (
	"regexp"
	"unicode"
)

// emailPattern requires one or more non-@ characters, an @, one or more non-@
// characters, a dot, and at least one more character. No deliverability check.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// IsValidEmail reports whether s looks like an email address
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsStrongPassword reports whether p satisfies the password policy: at least
// 8 characters with at least one uppercase letter, one lowercase letter and
// one digit. Special characters are allowed but not required.
func IsStrongPassword(p string) bool {
	if len(p) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range p {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasUpper && hasLower && hasDigit
}
