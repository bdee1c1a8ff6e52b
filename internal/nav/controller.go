package nav

import (
	"gita-tui/internal/content"
	"gita-tui/internal/views"
)

// ReadMarker records that a verse was opened.
type ReadMarker interface {
	MarkRead(id int)
}

// Controller owns the current screen. Every operation reports whether the
// screen changed; requests that don't apply to the current screen, or that
// name a chapter or verse missing from the index, leave it as it was.
type Controller struct {
	index   *content.Index
	reads   ReadMarker
	current Screen
}

func NewController(index *content.Index, reads ReadMarker) *Controller {
	return &Controller{index: index, reads: reads, current: Home{}}
}

func (c *Controller) Current() Screen {
	return c.current
}

// SelectChapter moves Home -> Chapter(n).
func (c *Controller) SelectChapter(n int) bool {
	if _, ok := c.current.(Home); !ok {
		return false
	}
	if _, ok := c.index.ChapterByNumber(n); !ok {
		return false
	}
	c.current = Chapter{Number: n}
	return true
}

// SelectVerse moves Chapter(n) -> Verse(id, n), marking the verse read
// first.
func (c *Controller) SelectVerse(id int) bool {
	ch, ok := c.current.(Chapter)
	if !ok {
		return false
	}
	v, ok := c.index.VerseByID(id)
	if !ok || v.ChapterNumber != ch.Number {
		return false
	}
	c.reads.MarkRead(id)
	c.current = Verse{ID: id, ChapterNumber: ch.Number}
	return true
}

// OpenDailyVerse is the Home shortcut straight to a verse. Back from there
// still lands on the verse's chapter.
func (c *Controller) OpenDailyVerse(v content.Verse) bool {
	if _, ok := c.current.(Home); !ok {
		return false
	}
	if _, ok := c.index.VerseByID(v.ID); !ok {
		return false
	}
	c.current = Verse{ID: v.ID, ChapterNumber: v.ChapterNumber}
	return true
}

// Neighbors returns the previous and next verse of the current verse
// screen.
func (c *Controller) Neighbors() views.Neighbors {
	v, ok := c.current.(Verse)
	if !ok {
		return views.Neighbors{}
	}
	return views.NeighborVerses(c.index.VersesForChapter(v.ChapterNumber), v.ID)
}

func (c *Controller) Prev() bool {
	n := c.Neighbors()
	return c.moveTo(n.PrevID, n.HasPrev)
}

func (c *Controller) Next() bool {
	n := c.Neighbors()
	return c.moveTo(n.NextID, n.HasNext)
}

func (c *Controller) moveTo(id int, ok bool) bool {
	v, isVerse := c.current.(Verse)
	if !isVerse || !ok {
		return false
	}
	c.current = Verse{ID: id, ChapterNumber: v.ChapterNumber}
	return true
}

// OpenSettings moves Home -> Settings.
func (c *Controller) OpenSettings() bool {
	if _, ok := c.current.(Home); !ok {
		return false
	}
	c.current = Settings{}
	return true
}

func (c *Controller) Back() bool {
	if _, ok := c.current.(Home); ok {
		return false
	}
	c.current = BackTarget(c.current)
	return true
}
