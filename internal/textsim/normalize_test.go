package textsim

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain ascii unchanged", "hello world", "hello world"},
		{"strips diacritics", "بِسْمِ اللَّهِ", "بسم الله"},
		{"alef hamza above", "أحمد", "احمد"},
		{"alef hamza below", "إسلام", "اسلام"},
		{"alef madda", "آمن", "امن"},
		{"alef maksura to ya", "موسى", "موسي"},
		{"ta marbuta to ha", "صلاة", "صلاه"},
		{"madda and ta marbuta", "آية", "ايه"},
		{"collapses whitespace", "  الحمد   لله \n رب ", "الحمد لله رب"},
		{"combined", "إِنَّ   اللَّهَ مَعَ الصَّابِرِينَ", "ان الله مع الصابرين"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ",
		"أَعُوذُ بِاللَّهِ",
		"  spaced   out  ",
		"إسلام آية موسى صلاة",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestWords(t *testing.T) {
	words := Words("الحمد لله رب العالمين")
	if len(words) != 4 {
		t.Fatalf("Words() returned %d words, want 4: %v", len(words), words)
	}
	if got := Words("   "); len(got) != 0 {
		t.Errorf("Words on blank input returned %v, want empty", got)
	}
}
