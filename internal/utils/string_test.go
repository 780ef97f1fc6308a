package utils

import "testing"

func TestNormalizeWord(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"  Foo ", "foo"},
		{"CREPUSCULAR", "crepuscular"},
		{"already", "already"},
		{"   ", ""},
		{"", ""},
	}
	for _, tc := range testCases {
		if got := NormalizeWord(tc.input); got != tc.expected {
			t.Errorf("NormalizeWord(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestIsWordToken(t *testing.T) {
	valid := []string{"word", "don't", "a", "zephyr"}
	for _, s := range valid {
		if !IsWordToken(s) {
			t.Errorf("IsWordToken(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "two words", "tab\t", "c++", "12three", "'leading", "trailing'", "do''ble", "two'apos'trophes"}
	for _, s := range invalid {
		if IsWordToken(s) {
			t.Errorf("IsWordToken(%q) = true, want false", s)
		}
	}
}

func TestFormatWithCommas(t *testing.T) {
	testCases := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}
	for _, tc := range testCases {
		if got := FormatWithCommas(tc.input); got != tc.expected {
			t.Errorf("FormatWithCommas(%d) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}
