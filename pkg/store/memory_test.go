package store

import (
	"reflect"
	"testing"
)

func TestMemStoreSeedNormalization(t *testing.T) {
	s := NewMemStore(map[string]string{
		"Foo ":    " a bar ",
		"  ":      "dropped",
		"blanked": "   ",
	})
	expected := map[string]string{"foo": "a bar"}
	if got := s.All(); !reflect.DeepEqual(got, expected) {
		t.Errorf("All() = %v, want %v", got, expected)
	}
}

func TestMemStoreAllReturnsCopy(t *testing.T) {
	s := NewMemStore(map[string]string{"foo": "bar"})
	snapshot := s.All()
	snapshot["foo"] = "mutated"
	if def, _ := s.Get("foo"); def != "bar" {
		t.Error("All() leaked internal state")
	}
}

func TestDecodeSlot(t *testing.T) {
	testCases := []struct {
		name     string
		data     string
		expected map[string]string
	}{
		{"empty input", "", map[string]string{}},
		{"valid object", `{"foo": "bar"}`, map[string]string{"foo": "bar"}},
		{"normalized on load", `{" Foo ": " bar "}`, map[string]string{"foo": "bar"}},
		{"garbage", "not json", map[string]string{}},
		{"wrong shape", `[1, 2, 3]`, map[string]string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := decodeSlot([]byte(tc.data)); !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("decodeSlot(%q) = %v, want %v", tc.data, got, tc.expected)
			}
		})
	}
}
