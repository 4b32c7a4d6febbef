// Package util holds the rune and string classifiers shared by the segmenter
// and the definition parser.
package util

import "unicode"

// CJK Unified Ideographs block.
const (
	CJKFirst rune = 0x4E00
	CJKLast  rune = 0x9FFF
)

// IsCJK reports whether r lies in the CJK Unified Ideographs block.
func IsCJK(r rune) bool {
	return r >= CJKFirst && r <= CJKLast
}

// IsAllCJK reports whether every rune of s is a CJK ideograph.
// The empty string is vacuously all-CJK.
func IsAllCJK(s string) bool {
	for _, r := range s {
		if !IsCJK(r) {
			return false
		}
	}
	return true
}

// IsAlpha reports whether s is non-empty and every rune is a Unicode letter.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsASCIIAlphaNum reports whether r is an ASCII letter or digit.
func IsASCIIAlphaNum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// IsASCIILetter reports whether r is an ASCII letter.
func IsASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
