// Package models defines core data structures for knowledge entries,
// assistant responses, and recitation sessions.
package models

// Category identifies which knowledge table a record belongs to.
type Category string

const (
	CategoryQuran   Category = "quran"
	CategoryHadith  Category = "hadith"
	CategoryFiqh    Category = "fiqh"
	CategoryAzkar   Category = "azkar"
	CategoryStories Category = "stories"
	CategoryGeneral Category = "general"
)

// HadithDegree is the authenticity classification of a hadith.
type HadithDegree string

const (
	DegreeSahih HadithDegree = "Sahih"
	DegreeHasan HadithDegree = "Hasan"
	DegreeDaif  HadithDegree = "Daif"
)

// AzkarEntry is a remembrance phrase with its reward and timing.
type AzkarEntry struct {
	ID              string `json:"id"`
	Category        string `json:"category"` // morning, evening, sleep, travel, prayer, fear, gratitude, general
	TitleArabic     string `json:"title_arabic"`
	Zikr            string `json:"zikr"`
	Transliteration string `json:"transliteration"`
	Meaning         string `json:"meaning"`
	Reward          string `json:"reward"`
	Frequency       string `json:"frequency"`
	RelatedVerse    string `json:"related_verse,omitempty"`
	RelatedHadith   string `json:"related_hadith,omitempty"`
	Timing          string `json:"timing"`
}

// QuranEntry is surah-level metadata with a key verse and themes.
type QuranEntry struct {
	ID                  string   `json:"id"`
	SurahNumber         int      `json:"surah_number"`
	SurahName           string   `json:"surah_name"`
	SurahNameArabic     string   `json:"surah_name_arabic"`
	Revelation          string   `json:"revelation"` // Meccan or Medinan
	VersesCount         int      `json:"verses_count"`
	Theme               string   `json:"theme"`
	KeyVerse            string   `json:"key_verse"`
	KeyVerseTranslation string   `json:"key_verse_translation"`
	KeyAyaNumber        int      `json:"key_aya_number"`
	Description         string   `json:"description"`
	ImportantTopics     []string `json:"important_topics"`
	HistoricalContext   string   `json:"historical_context,omitempty"`
}

// HadithEntry is a hadith with its chain, grading, and explanation.
type HadithEntry struct {
	ID                   string       `json:"id"`
	Text                 string       `json:"text"`
	Source               string       `json:"source"`
	Narrator             string       `json:"narrator"`
	Degree               HadithDegree `json:"degree"`
	Topic                string       `json:"topic"`
	Meaning              string       `json:"meaning"`
	PracticalApplication string       `json:"practical_application"`
	RelatedVerses        []string     `json:"related_verses,omitempty"`
	RelatedAhadith       []string     `json:"related_ahadith,omitempty"`
}

// FiqhEntry is a jurisprudence topic with its ruling and conditions.
type FiqhEntry struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	TitleArabic       string            `json:"title_arabic"`
	Category          string            `json:"category"`
	Definition        string            `json:"definition"`
	Ruling            string            `json:"ruling"`
	Conditions        []string          `json:"conditions,omitempty"`
	Exceptions        []string          `json:"exceptions,omitempty"`
	RelatedAyas       []string          `json:"related_ayas,omitempty"`
	SchoolDifferences map[string]string `json:"school_differences,omitempty"`
	Examples          []string          `json:"examples,omitempty"`
	PracticalTips     []string          `json:"practical_tips,omitempty"`
}

// StoryEntry is a prophet, companion, or moral story with its lesson.
type StoryEntry struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	TitleArabic    string   `json:"title_arabic"`
	Type           string   `json:"type"` // prophet, companion, historical, moral
	FullStory      string   `json:"full_story"`
	Lesson         string   `json:"lesson"`
	MoralOfStory   string   `json:"moral_of_story"`
	RelatedVerses  []string `json:"related_verses,omitempty"`
	RelatedHadiths []string `json:"related_hadiths,omitempty"`
	Characters     []string `json:"characters,omitempty"`
	Timeline       string   `json:"timeline,omitempty"`
}

// GeneralEntry is a general knowledge question with a prepared answer.
type GeneralEntry struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	TitleArabic     string   `json:"title_arabic"`
	Answer          string   `json:"answer"`
	RelatedVerses   []string `json:"related_verses,omitempty"`
	RelatedHadiths  []string `json:"related_hadiths,omitempty"`
	SuggestedTopics []string `json:"suggested_topics,omitempty"`
	Difficulty      string   `json:"difficulty"` // beginner, intermediate, advanced
	Keywords        []string `json:"keywords"`
}

// Surah is the minimal surah record used for search suggestions.
type Surah struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	EnglishName   string `json:"english_name"`
	NumberOfAyahs int    `json:"number_of_ayahs"`
}
