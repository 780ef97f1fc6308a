package analyze

import (
	"regexp"
	"strings"
)

// wordPattern matches one or more lowercase letters, optionally followed by
// a single apostrophe plus more letters ("don't" is one token). Digits,
// punctuation, and isolated apostrophes never survive.
var wordPattern = regexp.MustCompile(`[a-z]+(?:'[a-z]+)?`)

// surfacePattern is the same shape matched case-insensitively against the
// original text, so display casing can be recovered.
var surfacePattern = regexp.MustCompile(`(?i)[a-z]+(?:'[a-z]+)?`)

// Tokenize lowercases the input and extracts word tokens in order of
// appearance. An input with no words yields an empty slice.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// surfaceForms maps each lowercase token to the original casing of its
// first occurrence in text.
func surfaceForms(text string) map[string]string {
	surfaces := make(map[string]string)
	for _, match := range surfacePattern.FindAllString(text, -1) {
		key := strings.ToLower(match)
		if _, seen := surfaces[key]; !seen {
			surfaces[key] = match
		}
	}
	return surfaces
}
