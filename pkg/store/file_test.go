package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestFileStoreMissingFileStartsEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope", "personal_dictionary.json"))
	if got := s.All(); len(got) != 0 {
		t.Errorf("expected empty store, got %v", got)
	}
	if _, ok := s.Get("anything"); ok {
		t.Error("Get on empty store reported a hit")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personal_dictionary.json")

	s := NewFileStore(path)
	if err := s.Upsert("Crepuscular", "Relating to twilight."); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := s.Upsert("zephyr", "A gentle breeze."); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	// a fresh store over the same file sees the persisted entries
	reopened := NewFileStore(path)
	def, ok := reopened.Get("crepuscular")
	if !ok || def != "Relating to twilight." {
		t.Errorf("Get(crepuscular) = %q, %v after reopen", def, ok)
	}
	if len(reopened.All()) != 2 {
		t.Errorf("expected 2 entries after reopen, got %v", reopened.All())
	}

	if err := reopened.Remove("zephyr"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	final := NewFileStore(path)
	if _, ok := final.Get("zephyr"); ok {
		t.Error("removed entry survived persistence")
	}
}

func TestFileStoreNormalizesPersistedEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personal_dictionary.json")
	raw := `{"Foo ": " a bar ", " ": "dropped", "empty": "   "}`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatalf("seed write failed: %v", err)
	}

	s := NewFileStore(path)
	expected := map[string]string{"foo": "a bar"}
	if got := s.All(); !reflect.DeepEqual(got, expected) {
		t.Errorf("All() = %v, want %v", got, expected)
	}
	if def, ok := s.Get("FOO"); !ok || def != "a bar" {
		t.Errorf("Get(FOO) = %q, %v", def, ok)
	}
}

func TestFileStoreCorruptDataStartsEmpty(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"not json", "this is not json {"},
		{"json array", `["a", "b"]`},
		{"non-string values", `{"word": 42}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "personal_dictionary.json")
			if err := os.WriteFile(path, []byte(tc.data), 0644); err != nil {
				t.Fatalf("seed write failed: %v", err)
			}
			s := NewFileStore(path)
			if got := s.All(); len(got) != 0 {
				t.Errorf("expected empty store for corrupt data, got %v", got)
			}
			// the store stays usable after the silent recovery
			if err := s.Upsert("zephyr", "A gentle breeze."); err != nil {
				t.Errorf("Upsert after recovery failed: %v", err)
			}
		})
	}
}

func TestFileStoreEmptyUpsertIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personal_dictionary.json")
	s := NewFileStore(path)

	if err := s.Upsert("  ", "definition"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := s.Upsert("word", "   "); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if len(s.All()) != 0 {
		t.Errorf("empty inputs were stored: %v", s.All())
	}
	// no-op upserts never create the file
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no-op upsert touched the slot file")
	}
}

func TestFileStoreUpsertOverwrites(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "personal_dictionary.json"))
	if err := s.Upsert("zephyr", "old"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := s.Upsert("ZEPHYR", "A gentle breeze."); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if def, _ := s.Get("zephyr"); def != "A gentle breeze." {
		t.Errorf("expected overwritten definition, got %q", def)
	}
	if len(s.All()) != 1 {
		t.Errorf("case variants created duplicate entries: %v", s.All())
	}
}
