package dictionary

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// wordTrie indexes the merged dictionary word set for prefix traversal.
type wordTrie struct {
	trie *patricia.Trie
}

// buildWordTrie inserts every word from both tiers. The item carries no
// payload; definitions always come from the tiers themselves.
func buildWordTrie(base, user map[string]string) *wordTrie {
	trie := patricia.NewTrie()
	for word := range base {
		trie.Insert(patricia.Prefix(word), struct{}{})
	}
	for word := range user {
		trie.Insert(patricia.Prefix(word), struct{}{})
	}
	return &wordTrie{trie: trie}
}

// withPrefix collects dictionary words starting with prefix, shortening
// the prefix until something matches so near-misses still get hints.
// The searched word itself is excluded.
func (wt *wordTrie) withPrefix(prefix string, limit int) []string {
	for p := prefix; p != ""; p = p[:len(p)-1] {
		words := wt.collect(p, prefix, limit)
		if len(words) > 0 {
			return words
		}
	}
	return nil
}

// collect gathers subtree words under p, sorted, capped at limit.
func (wt *wordTrie) collect(p, exclude string, limit int) []string {
	var words []string
	err := wt.trie.VisitSubtree(patricia.Prefix(p), func(prefix patricia.Prefix, _ patricia.Item) error {
		word := string(prefix)
		if word == exclude {
			return nil
		}
		words = append(words, word)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}
	sort.Strings(words)
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}
