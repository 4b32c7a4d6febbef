package util

import (
	"unicode"
)

// IsPunctuation checks if a non-empty string consists entirely of punctuation or special CJK symbols.
func IsPunctuation(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsPunct(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether r is punctuation, a symbol, or a full-width form.
func IsPunct(r rune) bool {
	if unicode.IsPunct(r) || unicode.IsSymbol(r) {
		return true
	}
	// CJK Symbols and Punctuation
	if r >= 0x3000 && r <= 0x303F {
		return true
	}
	// Full-width forms (，；！ etc.)
	if r >= 0xFF00 && r <= 0xFFEF && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return true
	}
	return false
}
