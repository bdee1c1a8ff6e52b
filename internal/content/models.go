package content

import (
	"fmt"
	"strings"
)

type Chapter struct {
	ID                  int     `json:"id"`
	Name                string  `json:"name"`
	NameTransliterated  string  `json:"name_transliterated"`
	NameTranslation     string  `json:"name_translation"`
	VersesCount         int     `json:"verses_count"`
	ChapterNumber       int     `json:"chapter_number"`
	NameMeaning         string  `json:"name_meaning"`
	ChapterSummary      string  `json:"chapter_summary"`
	ChapterSummaryHindi string  `json:"chapter_summary_hindi"`
	ImageName           *string `json:"image_name,omitempty"`
}

type Verse struct {
	ID              int    `json:"id"`
	VerseNumber     int    `json:"verse_number"`
	ChapterNumber   int    `json:"chapter_number"`
	Text            string `json:"text"`
	Transliteration string `json:"transliteration"`
	WordMeanings    string `json:"word_meanings"`
}

type Translation struct {
	AuthorName  *string `json:"author_name"`
	Description string  `json:"description"`
	VerseID     int     `json:"verse_id"`
}

type Commentary struct {
	AuthorName  *string `json:"author_name"`
	Description string  `json:"description"`
	VerseID     int     `json:"verse_id"`
}

// Label returns the "Verse <chapter>.<verse>" heading used across screens.
func (v Verse) Label() string {
	return fmt.Sprintf("Verse %d.%d", v.ChapterNumber, v.VerseNumber)
}

// Preview returns at most n runes of the verse text, trimmed.
func (v Verse) Preview(n int) string {
	return truncate(v.Text, n)
}

func (t Translation) Author() string { return authorOrDefault(t.AuthorName) }

func (c Commentary) Author() string { return authorOrDefault(c.AuthorName) }

func authorOrDefault(name *string) string {
	if name == nil || strings.TrimSpace(*name) == "" {
		return "Author"
	}
	return *name
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return strings.TrimSpace(string(r))
}
