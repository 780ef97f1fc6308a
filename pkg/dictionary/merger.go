package dictionary

import (
	"sync"

	"github.com/ebmartin/uncommon/internal/utils"
	"github.com/ebmartin/uncommon/pkg/store"
)

// NotInDictionary is returned when neither tier has a definition.
const NotInDictionary = "Not in your dictionary yet."

// Merger answers lookups against the two dictionary tiers and routes
// personal dictionary mutations so its suggestion trie never goes stale.
type Merger struct {
	base  map[string]string
	store store.Store

	mu    sync.Mutex
	trie  *wordTrie
	dirty bool
}

// NewMerger creates a Merger over the given base mapping and user store.
func NewMerger(base map[string]string, userStore store.Store) *Merger {
	return &Merger{
		base:  base,
		store: userStore,
		dirty: true,
	}
}

// Lookup normalizes the word and returns the user definition if present,
// else the base definition, else the NotInDictionary sentinel.
func (m *Merger) Lookup(word string) string {
	w := utils.NormalizeWord(word)
	if def, ok := m.store.Get(w); ok {
		return def
	}
	if def, ok := m.base[w]; ok {
		return def
	}
	return NotInDictionary
}

// Defined reports whether either tier has the word.
func (m *Merger) Defined(word string) bool {
	w := utils.NormalizeWord(word)
	if _, ok := m.store.Get(w); ok {
		return true
	}
	_, ok := m.base[w]
	return ok
}

// Upsert writes an entry into the personal dictionary.
func (m *Merger) Upsert(word, definition string) error {
	if err := m.store.Upsert(word, definition); err != nil {
		return err
	}
	m.invalidate()
	return nil
}

// Remove deletes an entry from the personal dictionary. Base entries
// cannot be removed; a removed override falls back to the base tier.
func (m *Merger) Remove(word string) error {
	if err := m.store.Remove(word); err != nil {
		return err
	}
	m.invalidate()
	return nil
}

// Nearby returns up to limit dictionary words sharing a prefix with the
// given word, for "did you mean" style hints after a failed lookup.
func (m *Merger) Nearby(word string, limit int) []string {
	prefix := utils.NormalizeWord(word)
	if prefix == "" {
		return nil
	}
	m.mu.Lock()
	if m.dirty || m.trie == nil {
		m.trie = buildWordTrie(m.base, m.store.All())
		m.dirty = false
	}
	trie := m.trie
	m.mu.Unlock()

	return trie.withPrefix(prefix, limit)
}

// invalidate marks the trie for rebuild after a user-tier mutation.
func (m *Merger) invalidate() {
	m.mu.Lock()
	m.dirty = true
	m.mu.Unlock()
}
