/*
Package dictionary merges the bundled base dictionary with the user's
personal dictionary and answers definition lookups.

The base tier ships with the binary and is read-only; the user tier comes
from a store and wins on conflict. Lookups read through the store on every
call, so a mutation is visible to the very next lookup. A patricia trie
over the merged word set backs prefix suggestions for failed lookups.
*/
package dictionary

import (
	_ "embed"
	"encoding/json"

	"github.com/charmbracelet/log"

	"github.com/ebmartin/uncommon/internal/utils"
)

//go:embed data/base_dictionary.json
var baseDictionaryJSON []byte

// baseEntry is the shape of one bundled dictionary record. Only the
// definition field matters; unknown fields are ignored.
type baseEntry struct {
	Definition string `json:"definition"`
}

// LoadBase parses the bundled dictionary into a normalized word ->
// definition mapping. Keys are trimmed and lowercased, entries with blank
// words or definitions are dropped.
func LoadBase() map[string]string {
	return parseBase(baseDictionaryJSON)
}

// parseBase decodes raw dictionary JSON. Malformed data loads as an empty
// mapping rather than failing, matching how the personal store degrades.
func parseBase(data []byte) map[string]string {
	var raw map[string]baseEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Warnf("Could not parse base dictionary: %v. Starting empty.", err)
		return map[string]string{}
	}
	base := make(map[string]string, len(raw))
	for word, entry := range raw {
		w := utils.NormalizeWord(word)
		d := utils.NormalizeDefinition(entry.Definition)
		if w == "" || d == "" {
			continue
		}
		base[w] = d
	}
	log.Debugf("Loaded %d base dictionary entries", len(base))
	return base
}
