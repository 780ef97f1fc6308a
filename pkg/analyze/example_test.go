package analyze

import "testing"

func TestExtractExample(t *testing.T) {
	text := "The crepuscular light was lugubrious. Night fell early.\nA zephyr stirred! Did it?"

	testCases := []struct {
		name     string
		word     string
		expected string
	}{
		{"first sentence span", "crepuscular", "The crepuscular light was lugubrious."},
		{"word later in sentence", "lugubrious", "The crepuscular light was lugubrious."},
		{"second sentence", "night", "Night fell early."},
		{"newline bounded sentence", "zephyr", "A zephyr stirred!"},
		{"question terminator", "did", "Did it?"},
		{"case-insensitive match", "NIGHT", "Night fell early."},
		{"absent word", "quixotic", NoExample},
		{"substring is not a whole word", "crepus", NoExample},
		{"empty word", "", NoExample},
		{"whitespace word", "   ", NoExample},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractExample(text, tc.word); got != tc.expected {
				t.Errorf("ExtractExample(%q) = %q, want %q", tc.word, got, tc.expected)
			}
		})
	}
}

func TestExtractExampleMetacharactersNeverFail(t *testing.T) {
	text := "Some (parenthetical) text with a c++ mention."
	for _, word := range []string{"c++", "(parenthetical)", ".*", "a[b", `\b`, "$^|?"} {
		got := ExtractExample(text, word)
		if got == "" {
			t.Errorf("ExtractExample(%q) returned empty string instead of a sentence or sentinel", word)
		}
	}
}

func TestExtractExampleEdges(t *testing.T) {
	// match at the very start and very end of text, no terminators at all
	if got := ExtractExample("crepuscular glow without end", "crepuscular"); got != "crepuscular glow without end" {
		t.Errorf("unexpected span: %q", got)
	}
	if got := ExtractExample("it ends with zephyr", "zephyr"); got != "it ends with zephyr" {
		t.Errorf("unexpected span: %q", got)
	}
	// a span that trims to nothing yields the sentinel
	if got := ExtractExample("\n\n\n", "a"); got != NoExample {
		t.Errorf("expected sentinel, got %q", got)
	}
}

func TestExtractExampleUsesFirstOccurrence(t *testing.T) {
	text := "First zephyr here. Second zephyr there."
	if got := ExtractExample(text, "zephyr"); got != "First zephyr here." {
		t.Errorf("expected first occurrence's sentence, got %q", got)
	}
}
