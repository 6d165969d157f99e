// Package sanitize is the run-time support library for generated Modify
// methods: small, total string transforms applied before validation.
package sanitize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Lowercase lowercases the whole string.
func Lowercase(s string) string {
	return strings.ToLower(s)
}

// Uppercase uppercases the whole string.
func Uppercase(s string) string {
	return strings.ToUpper(s)
}

// Capitalize uppercases the first rune and leaves the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
