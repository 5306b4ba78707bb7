package knowledge

import (
	"strings"

	"github.com/noorlabs/murshid/internal/models"
)

// matchField reports whether field contains the query on either matching
// path: the raw substring path (Arabic has no case, so raw containment is
// the meaningful check) or the lowercased path (for transliterations and
// English field values).
func matchField(field, rawQuery, lowerQuery string) bool {
	if rawQuery == "" {
		return false
	}
	return strings.Contains(field, rawQuery) ||
		strings.Contains(strings.ToLower(field), lowerQuery)
}

// queryForms trims the query and returns its raw and lowercased forms.
func queryForms(query string) (raw, lower string) {
	raw = strings.TrimSpace(query)
	return raw, strings.ToLower(raw)
}

// SearchAzkar matches against the Arabic title, the zikr text, and the
// category tag, preserving table order.
func (s *Store) SearchAzkar(query string) []models.AzkarEntry {
	raw, lower := queryForms(query)
	matches := make([]models.AzkarEntry, 0)
	for _, e := range s.azkar {
		if matchField(e.TitleArabic, raw, lower) ||
			matchField(e.Zikr, raw, lower) ||
			matchField(e.Category, raw, lower) {
			matches = append(matches, e)
		}
	}
	return matches
}

// SearchQuran matches against the surah names (Arabic and transliterated)
// and the theme, preserving table order.
func (s *Store) SearchQuran(query string) []models.QuranEntry {
	raw, lower := queryForms(query)
	matches := make([]models.QuranEntry, 0)
	for _, e := range s.quran {
		if matchField(e.SurahName, raw, lower) ||
			matchField(e.SurahNameArabic, raw, lower) ||
			matchField(e.Theme, raw, lower) {
			matches = append(matches, e)
		}
	}
	return matches
}

// SearchHadith matches against the hadith text and its topic, preserving
// table order.
func (s *Store) SearchHadith(query string) []models.HadithEntry {
	raw, lower := queryForms(query)
	matches := make([]models.HadithEntry, 0)
	for _, e := range s.hadith {
		if matchField(e.Text, raw, lower) ||
			matchField(e.Topic, raw, lower) {
			matches = append(matches, e)
		}
	}
	return matches
}

// SearchFiqh matches against both titles and the category, preserving table
// order.
func (s *Store) SearchFiqh(query string) []models.FiqhEntry {
	raw, lower := queryForms(query)
	matches := make([]models.FiqhEntry, 0)
	for _, e := range s.fiqh {
		if matchField(e.Title, raw, lower) ||
			matchField(e.TitleArabic, raw, lower) ||
			matchField(e.Category, raw, lower) {
			matches = append(matches, e)
		}
	}
	return matches
}

// SearchStories matches against both titles and the story type, preserving
// table order.
func (s *Store) SearchStories(query string) []models.StoryEntry {
	raw, lower := queryForms(query)
	matches := make([]models.StoryEntry, 0)
	for _, e := range s.stories {
		if matchField(e.Title, raw, lower) ||
			matchField(e.TitleArabic, raw, lower) ||
			matchField(e.Type, raw, lower) {
			matches = append(matches, e)
		}
	}
	return matches
}

// SearchGeneral matches against both titles and the keyword list, preserving
// table order.
func (s *Store) SearchGeneral(query string) []models.GeneralEntry {
	raw, lower := queryForms(query)
	matches := make([]models.GeneralEntry, 0)
	for _, e := range s.general {
		if matchField(e.Title, raw, lower) || matchField(e.TitleArabic, raw, lower) {
			matches = append(matches, e)
			continue
		}
		for _, kw := range e.Keywords {
			if matchField(kw, raw, lower) {
				matches = append(matches, e)
				break
			}
		}
	}
	return matches
}

// LookupTopic consults the keyed offline-topic map: a topic matches when the
// query contains its key. Returns the first match in table order.
func (s *Store) LookupTopic(query string) (key, body string, ok bool) {
	_, lower := queryForms(query)
	for _, t := range s.topics {
		if strings.Contains(lower, strings.ToLower(t.Key)) {
			return t.Key, t.Body, true
		}
	}
	return "", "", false
}
