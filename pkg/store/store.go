/*
Package store persists the user's personal dictionary.

The personal dictionary is a small word -> definition mapping that survives
across sessions on one device. It lives in a single named slot holding a JSON
object; every mutation rewrites the whole slot. Corrupt or missing data is
never an error, it just means an empty dictionary.
*/
package store

import (
	"encoding/json"

	"github.com/ebmartin/uncommon/internal/utils"
)

// SlotKey names the storage slot all backends write the dictionary into.
const SlotKey = "personal_dictionary"

// Store is the personal dictionary storage boundary.
// Implementations load lazily on first access and persist synchronously on
// every mutation, so a returning call has always hit the backing medium.
type Store interface {
	// Get returns the definition for a normalized word.
	Get(word string) (string, bool)

	// All returns a copy of the current word -> definition mapping.
	All() map[string]string

	// Upsert inserts or overwrites an entry. Empty word or definition
	// after normalization is a no-op.
	Upsert(word, definition string) error

	// Remove deletes an entry and persists regardless of prior presence.
	Remove(word string) error
}

// decodeSlot parses a persisted JSON slot into a normalized mapping.
// Anything that is not a JSON object of strings yields an empty mapping.
func decodeSlot(data []byte) map[string]string {
	if len(data) == 0 {
		return map[string]string{}
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return map[string]string{}
	}
	return normalizeEntries(raw)
}

// encodeSlot renders the mapping as the persisted JSON object.
func encodeSlot(entries map[string]string) ([]byte, error) {
	return json.MarshalIndent(entries, "", "  ")
}

// normalizeEntries trims and lowercases keys, trims values, and drops
// entries that end up empty on either side.
func normalizeEntries(raw map[string]string) map[string]string {
	entries := make(map[string]string, len(raw))
	for word, definition := range raw {
		w := utils.NormalizeWord(word)
		d := utils.NormalizeDefinition(definition)
		if w == "" || d == "" {
			continue
		}
		entries[w] = d
	}
	return entries
}
