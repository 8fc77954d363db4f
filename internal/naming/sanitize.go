package naming

import (
	"regexp"
	"strings"
)

var reValidName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Sanitize strips every character that is not an ASCII letter, digit or
// underscore, and prefixes "_" when the remainder starts with a digit.
// Returns ErrInvalidName when nothing is left.
//
//	"my prop!"  -> "myprop"
//	"3-Leg"     -> "_3Leg"
//	"!!!"       -> error
func Sanitize(raw string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw) + 1)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if isASCIILetter(c) || isASCIIDigit(c) || c == '_' {
			b.WriteByte(c)
		}
	}
	s := b.String()
	if s == "" {
		return "", ErrInvalidName
	}
	if isASCIIDigit(s[0]) {
		s = "_" + s
	}
	return s, nil
}

// IsValidName reports whether s is an identifier-style name:
// ^[A-Za-z_][A-Za-z0-9_]*$.
func IsValidName(s string) bool {
	return reValidName.MatchString(s)
}

// isAllDigits reports whether s is non-empty and made only of ASCII digits.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isASCIIDigit(s[i]) {
			return false
		}
	}
	return true
}

func isASCIILetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isASCIIDigit(c byte) bool { return c >= '0' && c <= '9' }
