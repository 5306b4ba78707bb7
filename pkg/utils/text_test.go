package utils

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		maxLen   int
		expected string
	}{
		{"shorter than limit", "hello", 10, "hello"},
		{"exactly at limit", "hello", 5, "hello"},
		{"truncated", "hello world", 5, "hello..."},
		{"zero limit returns unchanged", "hello", 0, "hello"},
		{"negative limit returns unchanged", "hello", -1, "hello"},
		{"arabic not cut mid-rune", "بسم الله الرحمن", 8, "بسم الله..."},
		{"empty string", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.s, tt.maxLen); got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.maxLen, got, tt.expected)
			}
		})
	}
}
