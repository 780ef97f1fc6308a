package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizeWord trims surrounding whitespace and lowercases a word.
// Every dictionary key in the system goes through this before lookup or storage.
func NormalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeDefinition trims surrounding whitespace from a definition string.
func NormalizeDefinition(s string) string {
	return strings.TrimSpace(s)
}

// IsWordToken reports whether s looks like a token the analyzer could have
// produced: one or more letters, optionally with a single internal apostrophe.
func IsWordToken(s string) bool {
	if s == "" {
		return false
	}
	apostrophes := 0
	runes := []rune(s)
	for i, r := range runes {
		if r == '\'' {
			apostrophes++
			if apostrophes > 1 || i == 0 || i == len(runes)-1 {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	str := fmt.Sprintf("%d", n)
	result := ""
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(char)
	}
	return result
}
