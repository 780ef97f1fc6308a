package analyze

import "github.com/ebmartin/uncommon/internal/utils"

// defaultStopwords are common English function words that are never worth
// surfacing, no matter how rare they are in one document.
var defaultStopwords = []string{
	"a", "about", "after", "again", "all", "am", "an", "and", "any", "are",
	"as", "at", "be", "because", "been", "before", "being", "between", "both",
	"but", "by", "could", "did", "do", "does", "doing", "down", "during",
	"each", "few", "for", "from", "further", "had", "has", "have", "having",
	"he", "her", "here", "hers", "him", "his", "how", "i", "if", "in", "into",
	"is", "it", "its", "just", "me", "more", "most", "my", "no", "nor", "not",
	"now", "of", "off", "on", "once", "only", "or", "other", "our", "out",
	"over", "own", "same", "she", "should", "so", "some", "such", "than",
	"that", "the", "their", "them", "then", "there", "these", "they", "this",
	"those", "through", "to", "too", "under", "until", "up", "very", "was",
	"we", "were", "what", "when", "where", "which", "while", "who", "why",
	"will", "with", "would", "you", "your",
}

// DefaultStopwords returns the builtin stopword set.
func DefaultStopwords() map[string]struct{} {
	return StopwordSet(defaultStopwords, nil)
}

// StopwordSet builds a lookup set from the base list plus any extras,
// normalizing every entry and dropping blanks.
func StopwordSet(base, extra []string) map[string]struct{} {
	set := make(map[string]struct{}, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, w := range list {
			if n := utils.NormalizeWord(w); n != "" {
				set[n] = struct{}{}
			}
		}
	}
	return set
}
