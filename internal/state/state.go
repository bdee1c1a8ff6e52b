// Package state holds the reader's personal state: bookmarks, notes, read
// verses and display preferences.
//
// An AppState is built once at startup and shared by reference. Every
// mutation writes the affected key through to the prefs store before
// returning. Access must stay on a single goroutine.
package state

import (
	"log"
	"sort"
	"strings"

	"gita-tui/internal/prefs"
)

// Persisted keys.
const (
	KeyBookmarks = "bookmarks"
	KeyNotes     = "notes"
	KeyRead      = "read"
	KeyFontSize  = "font_size"
	KeyTheme     = "theme"
)

// DefaultFontSize is used until the reader changes it in Settings.
const DefaultFontSize = 18

// AppState holds the reader's bookmarks, notes, read markers and display
// preferences. Every mutation is written through to the store.
type AppState struct {
	store     *prefs.Store
	bookmarks map[int]struct{}
	notes     map[int]string
	read      map[int]struct{}
	fontSize  int
	theme     string
}

// Load reads all keys from store. Missing or malformed values fall back to
// empty collections and defaults.
func Load(store *prefs.Store, defaultTheme string) *AppState {
	s := &AppState{
		store:    store,
		notes:    DecodeNotes(store.String(KeyNotes, "")),
		fontSize: store.Int(KeyFontSize, DefaultFontSize),
		theme:    store.String(KeyTheme, defaultTheme),
	}
	s.bookmarks = s.loadSet(KeyBookmarks)
	s.read = s.loadSet(KeyRead)
	return s
}

func (s *AppState) IsBookmarked(id int) bool {
	_, ok := s.bookmarks[id]
	return ok
}

// ToggleBookmark flips membership of id and persists the whole set.
func (s *AppState) ToggleBookmark(id int) {
	if _, ok := s.bookmarks[id]; ok {
		delete(s.bookmarks, id)
	} else {
		s.bookmarks[id] = struct{}{}
	}
	s.storeSet(KeyBookmarks, s.bookmarks)
}

// Bookmarks returns the bookmarked ids in ascending order.
func (s *AppState) Bookmarks() []int {
	return sortedIDs(s.bookmarks)
}

// Note returns the note for id, or "" when there is none.
func (s *AppState) Note(id int) string {
	return s.notes[id]
}

func (s *AppState) HasNote(id int) bool {
	return strings.TrimSpace(s.notes[id]) != ""
}

// SetNote removes the note when text is blank, otherwise upserts it, then
// persists the whole map.
func (s *AppState) SetNote(id int, text string) {
	if strings.TrimSpace(text) == "" {
		delete(s.notes, id)
	} else {
		if strings.Contains(text, noteEntrySep) {
			log.Printf("state: note for verse %d contains %q and will not round-trip", id, noteEntrySep)
		}
		s.notes[id] = text
	}
	if err := s.store.PutString(KeyNotes, EncodeNotes(s.notes)); err != nil {
		log.Printf("state: persist notes: %v", err)
	}
}

// MarkRead is insert-only; nothing removes an id from the read set.
func (s *AppState) MarkRead(id int) {
	if _, ok := s.read[id]; ok {
		return
	}
	s.read[id] = struct{}{}
	s.storeSet(KeyRead, s.read)
}

// IsRead reports whether id was ever opened from a chapter list.
func (s *AppState) IsRead(id int) bool {
	_, ok := s.read[id]
	return ok
}

// ReadCount is the number of distinct verses read.
func (s *AppState) ReadCount() int {
	return len(s.read)
}

func (s *AppState) FontSize() int {
	return s.fontSize
}

// UpdateFontSize stores size verbatim. Range limits belong to the caller.
func (s *AppState) UpdateFontSize(size int) {
	s.fontSize = size
	if err := s.store.PutInt(KeyFontSize, size); err != nil {
		log.Printf("state: persist font size: %v", err)
	}
}

func (s *AppState) Theme() string {
	return s.theme
}

// SetTheme records the theme key; unknown keys are resolved at render time.
func (s *AppState) SetTheme(name string) {
	s.theme = name
	if err := s.store.PutString(KeyTheme, name); err != nil {
		log.Printf("state: persist theme: %v", err)
	}
}

func (s *AppState) loadSet(key string) map[int]struct{} {
	tokens, _ := s.store.StringSet(key)
	return DecodeIDSet(tokens)
}

func (s *AppState) storeSet(key string, ids map[int]struct{}) {
	if err := s.store.PutStringSet(key, EncodeIDSet(ids)); err != nil {
		log.Printf("state: persist %s: %v", key, err)
	}
}

func sortedIDs(ids map[int]struct{}) []int {
	out := make([]int, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
