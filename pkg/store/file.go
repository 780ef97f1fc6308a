package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/ebmartin/uncommon/internal/utils"
)

// FileStore keeps the personal dictionary in a single JSON file.
// The file is the slot: every mutation rewrites it in full, via a temp file
// rename so a crash mid-write leaves the old copy intact.
type FileStore struct {
	path    string
	mu      sync.RWMutex
	loaded  bool
	entries map[string]string
}

// NewFileStore creates a store backed by the JSON file at path.
// Nothing is read until the first access.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// ensureLoaded transitions the store from uninitialized to loaded.
// A missing file, unreadable file, or malformed JSON all load as empty.
func (s *FileStore) ensureLoaded() {
	if s.loaded {
		return
	}
	s.loaded = true
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("Could not read personal dictionary at %s: %v. Starting empty.", s.path, err)
		}
		s.entries = map[string]string{}
		return
	}
	s.entries = decodeSlot(data)
	log.Debugf("Loaded %d personal dictionary entries from %s", len(s.entries), s.path)
}

// Get returns the definition stored under the normalized word.
func (s *FileStore) Get(word string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()
	def, ok := s.entries[utils.NormalizeWord(word)]
	return def, ok
}

// All returns a copy of the current mapping.
func (s *FileStore) All() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()
	out := make(map[string]string, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

// Upsert inserts or overwrites an entry and persists the whole slot.
// Empty word or definition after normalization is a no-op.
func (s *FileStore) Upsert(word, definition string) error {
	w := utils.NormalizeWord(word)
	d := utils.NormalizeDefinition(definition)
	if w == "" || d == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()
	s.entries[w] = d
	return s.persist()
}

// Remove deletes an entry and persists regardless of whether it existed.
func (s *FileStore) Remove(word string) error {
	w := utils.NormalizeWord(word)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()
	delete(s.entries, w)
	return s.persist()
}

// persist rewrites the slot file atomically. Callers hold the write lock.
func (s *FileStore) persist() error {
	data, err := encodeSlot(s.entries)
	if err != nil {
		return fmt.Errorf("encode personal dictionary: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write personal dictionary: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace personal dictionary: %w", err)
	}
	return nil
}
