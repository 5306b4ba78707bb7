// Package knowledge exposes the compiled-in content tables and the
// per-category substring searchers over them. All tables are read-only after
// process start; lookups are full-table scans since volumes stay in the low
// hundreds of records.
package knowledge

import (
	"math/rand"
	"strings"

	"github.com/noorlabs/murshid/internal/models"
	"github.com/noorlabs/murshid/internal/textsim"
)

// Store holds the knowledge tables. Construct once at startup with NewStore
// and share by reference; no locking is needed since it is never mutated.
type Store struct {
	azkar   []models.AzkarEntry
	quran   []models.QuranEntry
	hadith  []models.HadithEntry
	fiqh    []models.FiqhEntry
	stories []models.StoryEntry
	general []models.GeneralEntry
	topics  []offlineTopic
	surahs  []models.Surah
}

// NewStore returns the store backed by the compiled-in tables.
func NewStore() *Store {
	return &Store{
		azkar:   azkarTable,
		quran:   quranTable,
		hadith:  hadithTable,
		fiqh:    fiqhTable,
		stories: storiesTable,
		general: generalTable,
		topics:  offlineTopics,
		surahs:  surahTable,
	}
}

// Azkar returns the full Azkar table in insertion order.
func (s *Store) Azkar() []models.AzkarEntry { return s.azkar }

// Quran returns the full surah metadata table in insertion order.
func (s *Store) Quran() []models.QuranEntry { return s.quran }

// Hadith returns the full hadith table in insertion order.
func (s *Store) Hadith() []models.HadithEntry { return s.hadith }

// Fiqh returns the full fiqh table in insertion order.
func (s *Store) Fiqh() []models.FiqhEntry { return s.fiqh }

// Stories returns the full stories table in insertion order.
func (s *Store) Stories() []models.StoryEntry { return s.stories }

// General returns the full general knowledge table in insertion order.
func (s *Store) General() []models.GeneralEntry { return s.general }

// RandomAzkar returns up to n entries sampled uniformly without replacement.
func (s *Store) RandomAzkar(n int) []models.AzkarEntry {
	idx := sampleIndices(len(s.azkar), n)
	out := make([]models.AzkarEntry, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.azkar[i])
	}
	return out
}

// RandomStories returns up to n entries sampled uniformly without replacement.
func (s *Store) RandomStories(n int) []models.StoryEntry {
	idx := sampleIndices(len(s.stories), n)
	out := make([]models.StoryEntry, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.stories[i])
	}
	return out
}

// SurahSuggestions returns up to limit surah name suggestions whose
// normalized name contains the normalized query. Duplicates are dropped.
func (s *Store) SurahSuggestions(query string, limit int) []string {
	if limit <= 0 {
		limit = 5
	}
	nq := textsim.Normalize(query)
	if nq == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, surah := range s.surahs {
		if len(out) >= limit {
			break
		}
		name := surah.Name
		if !strings.Contains(textsim.Normalize(name), nq) &&
			!strings.Contains(strings.ToLower(surah.EnglishName), strings.ToLower(nq)) {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func sampleIndices(tableLen, n int) []int {
	if n > tableLen {
		n = tableLen
	}
	if n <= 0 {
		return nil
	}
	perm := rand.Perm(tableLen)
	return perm[:n]
}
