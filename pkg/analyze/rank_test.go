package analyze

import (
	"reflect"
	"strings"
	"testing"
)

func TestRankOrderingChain(t *testing.T) {
	// counts: solitary words are rarer and come first; among count ties
	// the longer word wins; equal lengths fall back to lexicographic.
	tokens := []string{
		"lugubrious", "lugubrious",
		"crepuscular",
		"mellifluous",
		"saturnine",
	}
	opts := Options{MinLength: 8, Limit: 75}

	got := Rank(tokens, opts)
	expected := []WordCount{
		{Word: "crepuscular", Count: 1},
		{Word: "mellifluous", Count: 1},
		{Word: "saturnine", Count: 1},
		{Word: "lugubrious", Count: 2},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Rank() = %v, want %v", got, expected)
	}
}

func TestRankStrictTotalOrder(t *testing.T) {
	tokens := Tokenize(strings.Repeat("penurious saturnine obstreperous gossamer mellifluous sesquipedalian ", 3) + "crepuscular lugubrious")
	ranked := Rank(tokens, Options{MinLength: 8})

	for i := 1; i < len(ranked); i++ {
		a, b := ranked[i-1], ranked[i]
		switch {
		case a.Count < b.Count:
		case a.Count == b.Count && len(a.Word) > len(b.Word):
		case a.Count == b.Count && len(a.Word) == len(b.Word) && a.Word < b.Word:
		default:
			t.Errorf("entries %d and %d violate the order chain: %v before %v", i-1, i, a, b)
		}
	}
}

func TestRankDeterministic(t *testing.T) {
	tokens := Tokenize("The obstreperous crowd was obstreperous and the gossamer veil was diaphanous, truly diaphanous and gossamer thin.")
	opts := DefaultOptions()

	first := Rank(tokens, opts)
	second := Rank(tokens, opts)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Rank is not idempotent: %v vs %v", first, second)
	}
}

func TestRankFiltering(t *testing.T) {
	testCases := []struct {
		name     string
		tokens   []string
		opts     Options
		expected []string
	}{
		{
			"stopwords dropped even when long enough",
			[]string{"because", "crepuscular"},
			Options{MinLength: 4, Stopwords: DefaultStopwords()},
			[]string{"crepuscular"},
		},
		{
			"short words dropped",
			[]string{"fox", "zephyr", "crepuscular"},
			Options{MinLength: 8},
			[]string{"crepuscular"},
		},
		{
			"no stopword set means no stopword filter",
			[]string{"because"},
			Options{MinLength: 4},
			[]string{"because"},
		},
		{
			"zero min length keeps everything",
			[]string{"a", "ox"},
			Options{},
			[]string{"ox", "a"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Rank(tc.tokens, tc.opts)
			words := make([]string, len(got))
			for i, wc := range got {
				words[i] = wc.Word
			}
			if !reflect.DeepEqual(words, tc.expected) {
				t.Errorf("Rank() words = %v, want %v", words, tc.expected)
			}
		})
	}
}

func TestRankLimitNeverPads(t *testing.T) {
	tokens := []string{"crepuscular", "lugubrious", "saturnine"}

	limited := Rank(tokens, Options{MinLength: 8, Limit: 2})
	if len(limited) != 2 {
		t.Errorf("expected 2 entries with limit 2, got %d", len(limited))
	}

	// fewer survivors than limit: return all, never pad
	all := Rank(tokens, Options{MinLength: 8, Limit: 75})
	if len(all) != 3 {
		t.Errorf("expected 3 entries with limit 75, got %d", len(all))
	}
}

func TestCount(t *testing.T) {
	freq := Count([]string{"a", "b", "a", "a"})
	if freq["a"] != 3 || freq["b"] != 1 {
		t.Errorf("unexpected frequency table: %v", freq)
	}
	if len(Count(nil)) != 0 {
		t.Error("expected empty table for nil tokens")
	}
}
