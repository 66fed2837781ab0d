// Package validate holds the pure predicates the client applies to
// user-entered credentials before anything is sent over the network.
// Both functions are synchronous and side-effect free; they are advisory
// gates, and the submitter re-runs them itself so callers cannot skip them.
package validate

import (
	"regexp"
	"strings"
	"unicode"
)

// identityPattern accepts addresses of the shape local@domain where the
// domain contains at least one dot and no part contains whitespace or a
// second '@'.
var identityPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SecretSymbols is the punctuation set a secret must draw at least one
// character from.
const SecretSymbols = "!@#$%^&*"

// MinSecretLen is the minimum accepted secret length.
const MinSecretLen = 8

// IsIdentityValid reports whether s is a well-formed login identity
// (email-shaped): exactly one '@', non-empty local part, a domain with at
// least one '.', and no embedded whitespace.
func IsIdentityValid(s string) bool {
	return identityPattern.MatchString(s)
}

// IsSecretValid reports whether s is an acceptable secret: at least
// MinSecretLen characters with at least one digit, one lowercase letter,
// one uppercase letter, and one symbol from SecretSymbols. All four classes
// are mandatory.
func IsSecretValid(s string) bool {
	if len(s) < MinSecretLen {
		return false
	}

	var digit, lower, upper, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case strings.ContainsRune(SecretSymbols, r):
			symbol = true
		}
	}

	return digit && lower && upper && symbol
}
