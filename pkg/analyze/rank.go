package analyze

import "sort"

// Default ranking policy. Both are tunable through pkg/config.
const (
	DefaultMinLength = 8
	DefaultLimit     = 75
)

// WordCount pairs a token with its occurrence count in one document.
type WordCount struct {
	Word  string
	Count int
}

// Options controls candidate filtering and truncation for Rank.
type Options struct {
	// MinLength drops tokens shorter than this many bytes. Zero or
	// negative disables the length filter.
	MinLength int
	// Limit truncates the ranked output. Zero or negative disables
	// truncation; fewer surviving candidates are never padded.
	Limit int
	// Stopwords are dropped outright. Nil means no stopword filtering.
	Stopwords map[string]struct{}
}

// DefaultOptions returns the builtin ranking policy.
func DefaultOptions() Options {
	return Options{
		MinLength: DefaultMinLength,
		Limit:     DefaultLimit,
		Stopwords: DefaultStopwords(),
	}
}

// Count builds the frequency table for a token sequence.
func Count(tokens []string) map[string]int {
	freq := make(map[string]int, len(tokens))
	for _, t := range tokens {
		freq[t]++
	}
	return freq
}

// Rank orders candidate tokens by how much they are worth studying:
// rarest first, longer words winning count ties, lexicographic order
// breaking the rest. The chain makes output fully deterministic for
// identical input.
func Rank(tokens []string, opts Options) []WordCount {
	freq := Count(tokens)

	candidates := make([]WordCount, 0, len(freq))
	for word, count := range freq {
		if opts.Stopwords != nil {
			if _, stop := opts.Stopwords[word]; stop {
				continue
			}
		}
		if opts.MinLength > 0 && len(word) < opts.MinLength {
			continue
		}
		candidates = append(candidates, WordCount{Word: word, Count: count})
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Count != b.Count {
			return a.Count < b.Count
		}
		if len(a.Word) != len(b.Word) {
			return len(a.Word) > len(b.Word)
		}
		return a.Word < b.Word
	})

	if opts.Limit > 0 && len(candidates) > opts.Limit {
		candidates = candidates[:opts.Limit]
	}
	return candidates
}
