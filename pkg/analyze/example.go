package analyze

import (
	"regexp"
	"strings"
)

// NoExample is returned when a word has no whole-word occurrence in the text.
const NoExample = "No example found in your text."

// isTerminator reports whether b ends a sentence-like span.
func isTerminator(b byte) bool {
	return b == '.' || b == '!' || b == '?' || b == '\n'
}

// ExtractExample returns the sentence-like span around the first
// case-insensitive whole-word occurrence of word in originalText, or the
// NoExample sentinel. The word is quoted before matching, so tokens that
// happen to contain pattern metacharacters can never break extraction.
func ExtractExample(originalText, word string) string {
	if strings.TrimSpace(word) == "" {
		return NoExample
	}
	pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		return NoExample
	}
	loc := pattern.FindStringIndex(originalText)
	if loc == nil {
		return NoExample
	}

	// Back up to just after the preceding terminator, or the start of text.
	start := loc[0]
	for start > 0 && !isTerminator(originalText[start-1]) {
		start--
	}
	// Run forward through the following terminator, or the end of text.
	end := loc[1]
	for end < len(originalText) && !isTerminator(originalText[end]) {
		end++
	}
	if end < len(originalText) {
		end++
	}

	sentence := strings.TrimSpace(originalText[start:end])
	if sentence == "" {
		return NoExample
	}
	return sentence
}
