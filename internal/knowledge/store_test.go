package knowledge

import "testing"

func TestNewStoreTablesPopulated(t *testing.T) {
	s := NewStore()
	if len(s.Azkar()) == 0 {
		t.Error("azkar table is empty")
	}
	if len(s.Quran()) == 0 {
		t.Error("quran table is empty")
	}
	if len(s.Hadith()) == 0 {
		t.Error("hadith table is empty")
	}
	if len(s.Fiqh()) == 0 {
		t.Error("fiqh table is empty")
	}
	if len(s.Stories()) == 0 {
		t.Error("stories table is empty")
	}
	if len(s.General()) == 0 {
		t.Error("general table is empty")
	}
}

func TestRandomAzkar(t *testing.T) {
	s := NewStore()

	got := s.RandomAzkar(3)
	if len(got) != 3 {
		t.Fatalf("RandomAzkar(3) returned %d entries", len(got))
	}
	seen := make(map[string]bool)
	for _, e := range got {
		if seen[e.ID] {
			t.Errorf("duplicate entry %s in random sample", e.ID)
		}
		seen[e.ID] = true
	}

	// Asking for more than the table holds caps at the table size.
	all := s.RandomAzkar(1000)
	if len(all) != len(s.Azkar()) {
		t.Errorf("oversized sample = %d entries, want %d", len(all), len(s.Azkar()))
	}

	if got := s.RandomAzkar(0); len(got) != 0 {
		t.Errorf("RandomAzkar(0) = %d entries, want 0", len(got))
	}
}

func TestRandomStories(t *testing.T) {
	s := NewStore()
	got := s.RandomStories(2)
	if len(got) != 2 {
		t.Fatalf("RandomStories(2) returned %d entries", len(got))
	}
	if got[0].ID == got[1].ID {
		t.Error("random sample repeated the same story")
	}
}

func TestSurahSuggestions(t *testing.T) {
	s := NewStore()

	got := s.SurahSuggestions("الفاتحة", 5)
	if len(got) != 1 || got[0] != "الفاتحة" {
		t.Errorf("suggestions for الفاتحة = %v", got)
	}

	// Diacritics in the query are ignored.
	got = s.SurahSuggestions("الفَاتِحَة", 5)
	if len(got) != 1 {
		t.Errorf("diacritic query suggestions = %v", got)
	}

	if got := s.SurahSuggestions("", 5); len(got) != 0 {
		t.Errorf("empty query suggested %v", got)
	}
}

func TestSurahSuggestionsLimit(t *testing.T) {
	s := NewStore()
	// "ال" prefixes most surah names; the limit caps the result.
	got := s.SurahSuggestions("ال", 3)
	if len(got) != 3 {
		t.Errorf("limited suggestions = %d entries, want 3", len(got))
	}
}

func TestSurahSuggestionsEnglishName(t *testing.T) {
	s := NewStore()
	got := s.SurahSuggestions("yusuf", 5)
	if len(got) != 1 || got[0] != "يوسف" {
		t.Errorf("english name suggestions = %v, want [يوسف]", got)
	}
}
