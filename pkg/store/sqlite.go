package store

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ebmartin/uncommon/internal/utils"
)

// SQLiteStore keeps the personal dictionary in a one-row key/value table.
// The whole mapping is serialized as JSON under SlotKey, same shape as the
// file backend, so the two stay interchangeable.
type SQLiteStore struct {
	db      *sql.DB
	mu      sync.Mutex
	loaded  bool
	entries map[string]string
}

// OpenSQLiteStore opens (or creates) the database at path and ensures the
// kv table exists.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open store database: %w", err)
	}
	// A single connection keeps in-memory databases coherent in tests.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ensureLoaded reads the slot row once. A missing row or malformed JSON
// loads as an empty dictionary.
func (s *SQLiteStore) ensureLoaded() {
	if s.loaded {
		return
	}
	s.loaded = true
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, SlotKey).Scan(&value)
	switch {
	case err == sql.ErrNoRows:
		s.entries = map[string]string{}
	case err != nil:
		log.Warnf("Could not read personal dictionary slot: %v. Starting empty.", err)
		s.entries = map[string]string{}
	default:
		s.entries = decodeSlot([]byte(value))
	}
	log.Debugf("Loaded %d personal dictionary entries from sqlite", len(s.entries))
}

// Get returns the definition stored under the normalized word.
func (s *SQLiteStore) Get(word string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()
	def, ok := s.entries[utils.NormalizeWord(word)]
	return def, ok
}

// All returns a copy of the current mapping.
func (s *SQLiteStore) All() map[string]string {
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
func (s *SQLiteStore) Upsert(word, definition string) error {
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

// Remove deletes an entry and persists regardless of prior presence.
func (s *SQLiteStore) Remove(word string) error {
	w := utils.NormalizeWord(word)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()
	delete(s.entries, w)
	return s.persist()
}

// persist overwrites the slot row with the full mapping. Callers hold the lock.
func (s *SQLiteStore) persist() error {
	data, err := encodeSlot(s.entries)
	if err != nil {
		return fmt.Errorf("encode personal dictionary: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		SlotKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("write personal dictionary slot: %w", err)
	}
	return nil
}
