// Package views computes read-only projections over content and state.
package views

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"gita-tui/internal/content"
)

// Placeholder stands in for the daily verse when no verses are loaded.
var Placeholder = content.Verse{Text: "...", Transliteration: "...", WordMeanings: "..."}

// DailyVerse picks verses[day-of-year % len], so every caller on the same
// calendar day gets the same verse.
func DailyVerse(verses []content.Verse, now time.Time) content.Verse {
	if len(verses) == 0 {
		return Placeholder
	}
	return verses[now.YearDay()%len(verses)]
}

// Progress returns round(read/total*100). ok is false when total is not
// positive and no progress should be shown.
func Progress(read, total int) (pct int, ok bool) {
	if total <= 0 {
		return 0, false
	}
	return int(math.Round(float64(read) / float64(total) * 100)), true
}

type Neighbors struct {
	PrevID  int
	HasPrev bool
	NextID  int
	HasNext bool
}

// NeighborVerses locates currentID in a chapter's ordered verse list.
func NeighborVerses(ordered []content.Verse, currentID int) Neighbors {
	var n Neighbors
	for i, v := range ordered {
		if v.ID != currentID {
			continue
		}
		if i > 0 {
			n.PrevID, n.HasPrev = ordered[i-1].ID, true
		}
		if i+1 < len(ordered) {
			n.NextID, n.HasNext = ordered[i+1].ID, true
		}
		break
	}
	return n
}

// Filter keeps items where any field contains query, ignoring case. A blank
// query returns items unchanged.
func Filter[T any](query string, items []T, fields ...func(T) string) []T {
	if strings.TrimSpace(query) == "" {
		return items
	}

	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields {
			if strings.Contains(fold.String(field(item)), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// FilterChapters matches the transliterated name, name and summary.
func FilterChapters(query string, chapters []content.Chapter) []content.Chapter {
	return Filter(query, chapters,
		func(c content.Chapter) string { return c.NameTransliterated },
		func(c content.Chapter) string { return c.Name },
		func(c content.Chapter) string { return c.ChapterSummary },
	)
}

// FilterVerses matches verse text and transliteration.
func FilterVerses(query string, verses []content.Verse) []content.Verse {
	return Filter(query, verses,
		func(v content.Verse) string { return v.Text },
		func(v content.Verse) string { return v.Transliteration },
	)
}
