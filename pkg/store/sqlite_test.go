package store

import (
	"path/filepath"
	"testing"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreStartsEmpty(t *testing.T) {
	s := newTestSQLiteStore(t)
	if got := s.All(); len(got) != 0 {
		t.Errorf("expected empty store, got %v", got)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)

	if err := s.Upsert("Crepuscular", " Relating to twilight. "); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	def, ok := s.Get("CREPUSCULAR")
	if !ok || def != "Relating to twilight." {
		t.Errorf("Get = %q, %v", def, ok)
	}

	if err := s.Remove("crepuscular"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, ok := s.Get("crepuscular"); ok {
		t.Error("entry survived Remove")
	}
	// removing an absent word is fine
	if err := s.Remove("never-there"); err != nil {
		t.Errorf("Remove of absent word failed: %v", err)
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personal_dictionary.db")

	s, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore failed: %v", err)
	}
	if err := s.Upsert("zephyr", "A gentle breeze."); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()
	if def, ok := reopened.Get("zephyr"); !ok || def != "A gentle breeze." {
		t.Errorf("Get after reopen = %q, %v", def, ok)
	}
}

func TestSQLiteStoreCorruptSlotStartsEmpty(t *testing.T) {
	s := newTestSQLiteStore(t)
	if _, err := s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)`, SlotKey, "{{{not json"); err != nil {
		t.Fatalf("seed write failed: %v", err)
	}
	if got := s.All(); len(got) != 0 {
		t.Errorf("expected empty store for corrupt slot, got %v", got)
	}
	if err := s.Upsert("zephyr", "A gentle breeze."); err != nil {
		t.Errorf("Upsert after recovery failed: %v", err)
	}
}
