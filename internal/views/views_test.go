package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gita-tui/internal/content"
)

func verses(ids ...int) []content.Verse {
	out := make([]content.Verse, 0, len(ids))
	for i, id := range ids {
		out = append(out, content.Verse{ID: id, VerseNumber: i + 1, ChapterNumber: 1})
	}
	return out
}

func TestDailyVerse_DeterministicForDay(t *testing.T) {
	list := verses(10, 20, 30, 40, 50)
	// Feb 1 is day 32; 32 % 5 == 2.
	morning := time.Date(2024, time.February, 1, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2024, time.February, 1, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, 30, DailyVerse(list, morning).ID)
	assert.Equal(t, DailyVerse(list, morning), DailyVerse(list, evening))

	nextDay := morning.AddDate(0, 0, 1)
	assert.Equal(t, 40, DailyVerse(list, nextDay).ID)
}

func TestDailyVerse_EmptyReturnsPlaceholder(t *testing.T) {
	v := DailyVerse(nil, time.Now())

	assert.Equal(t, 0, v.ID)
	assert.Equal(t, "...", v.Text)
}

func TestProgress(t *testing.T) {
	cases := []struct {
		read, total, want int
	}{
		{0, 10, 0},
		{10, 10, 100},
		{3, 10, 30},
		{1, 3, 33},
		{2, 3, 67},
		{1, 200, 1},
	}
	for _, c := range cases {
		got, ok := Progress(c.read, c.total)
		assert.True(t, ok)
		assert.Equal(t, c.want, got, "progress(%d,%d)", c.read, c.total)
	}
}

func TestProgress_ZeroTotalHasNoValue(t *testing.T) {
	_, ok := Progress(0, 0)
	assert.False(t, ok)

	_, ok = Progress(5, 0)
	assert.False(t, ok)
}

func TestNeighborVerses(t *testing.T) {
	list := verses(1, 2, 3)

	assert.Equal(t, Neighbors{NextID: 2, HasNext: true}, NeighborVerses(list, 1))
	assert.Equal(t, Neighbors{PrevID: 1, HasPrev: true, NextID: 3, HasNext: true}, NeighborVerses(list, 2))
	assert.Equal(t, Neighbors{PrevID: 2, HasPrev: true}, NeighborVerses(list, 3))
}

func TestNeighborVerses_UnknownOrSingle(t *testing.T) {
	assert.Equal(t, Neighbors{}, NeighborVerses(verses(1, 2), 9))
	assert.Equal(t, Neighbors{}, NeighborVerses(verses(1), 1))
	assert.Equal(t, Neighbors{}, NeighborVerses(nil, 1))
}

func TestFilterChapters(t *testing.T) {
	chapters := []content.Chapter{
		{ChapterNumber: 1, NameTransliterated: "Arjuna Vishada Yoga", ChapterSummary: "Arjuna despairs."},
		{ChapterNumber: 2, NameTransliterated: "Sankhya Yoga", ChapterSummary: "KRISHNA begins to teach."},
		{ChapterNumber: 10, Name: "Krishna-vibhuti", NameTransliterated: "Vibhuti Yoga"},
		{ChapterNumber: 11, NameTransliterated: "Vishwaroopa Darshana Yoga"},
	}

	got := FilterChapters("krishna", chapters)

	nums := []int{}
	for _, c := range got {
		nums = append(nums, c.ChapterNumber)
	}
	assert.Equal(t, []int{2, 10}, nums)
}

func TestFilter_BlankQueryIsIdentity(t *testing.T) {
	chapters := []content.Chapter{{ChapterNumber: 1}, {ChapterNumber: 2}}

	assert.Equal(t, chapters, FilterChapters("", chapters))
	assert.Equal(t, chapters, FilterChapters("   ", chapters))
}

func TestFilterVerses_TextAndTransliteration(t *testing.T) {
	list := []content.Verse{
		{ID: 1, Text: "You have a right to perform your duty"},
		{ID: 2, Transliteration: "karmaṇy-evādhikāras te"},
		{ID: 3, Text: "unrelated", WordMeanings: "duty"},
	}

	assert.Len(t, FilterVerses("DUTY", list), 1)
	assert.Equal(t, 2, FilterVerses("Karmaṇy", list)[0].ID)
	assert.Empty(t, FilterVerses("absent", list))
}
