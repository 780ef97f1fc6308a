package store

import (
	"github.com/ebmartin/uncommon/internal/utils"
)

// MemStore is an in-memory Store with no persistence.
// It backs tests and one-off runs where nothing should touch the disk.
type MemStore struct {
	entries map[string]string
}

// NewMemStore creates a MemStore seeded with the given entries.
// The seed goes through the same normalization as persisted data.
func NewMemStore(seed map[string]string) *MemStore {
	return &MemStore{entries: normalizeEntries(seed)}
}

// Get returns the definition stored under the normalized word.
func (s *MemStore) Get(word string) (string, bool) {
	def, ok := s.entries[utils.NormalizeWord(word)]
	return def, ok
}

// All returns a copy of the current mapping.
func (s *MemStore) All() map[string]string {
	out := make(map[string]string, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

// Upsert inserts or overwrites an entry. Empty inputs are a no-op.
func (s *MemStore) Upsert(word, definition string) error {
	w := utils.NormalizeWord(word)
	d := utils.NormalizeDefinition(definition)
	if w == "" || d == "" {
		return nil
	}
	s.entries[w] = d
	return nil
}

// Remove deletes an entry if present.
func (s *MemStore) Remove(word string) error {
	delete(s.entries, utils.NormalizeWord(word))
	return nil
}
