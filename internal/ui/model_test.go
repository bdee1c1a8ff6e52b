package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gita-tui/internal/content"
	"gita-tui/internal/nav"
	"gita-tui/internal/prefs"
	"gita-tui/internal/state"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func testIndex() *content.Index {
	return content.NewIndex(
		[]content.Chapter{
			{ID: 1, ChapterNumber: 1, Name: "अर्जुनविषादयोग", NameTransliterated: "Arjuna Vishada Yoga", VersesCount: 2, ChapterSummary: "Arjuna despairs."},
			{ID: 2, ChapterNumber: 2, Name: "सांख्ययोग", NameTransliterated: "Sankhya Yoga", VersesCount: 1, ChapterSummary: "Krishna teaches."},
		},
		[]content.Verse{
			{ID: 1, VerseNumber: 1, ChapterNumber: 1, Text: "Dhritarashtra said"},
			{ID: 2, VerseNumber: 2, ChapterNumber: 1, Text: "Sanjaya said"},
			{ID: 3, VerseNumber: 1, ChapterNumber: 2, Text: "You have a right to your duty"},
		},
		[]content.Translation{{Description: "translated", VerseID: 1}},
		nil,
	)
}

// Jan 2 is day 2, so the daily verse is verses[2 % 3] = id 3 in chapter 2.
var fixedNow = func() time.Time { return time.Date(2025, time.January, 2, 8, 0, 0, 0, time.UTC) }

func newTestModel(t *testing.T) (Model, *state.AppState, *fakeClipboard) {
	t.Helper()
	st := state.Load(prefs.New(prefs.NewMemory()), "saffron")
	clip := &fakeClipboard{}
	m := NewModel(Options{Index: testIndex(), State: st, Clipboard: clip, Now: fixedNow})
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, st, clip
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = send(t, m, key(k))
	}
	return m
}

func TestModel_StartsOnHome(t *testing.T) {
	m, _, _ := newTestModel(t)

	assert.Equal(t, nav.Home{}, m.Screen())
	view := m.View()
	assert.Contains(t, view, "Verse of the Day.")
	assert.Contains(t, view, "Arjuna Vishada Yoga")
	assert.Contains(t, view, "0 of 3 verses read (0%)")
}

func TestModel_OpenChapterThenVerseMarksRead(t *testing.T) {
	m, st, _ := newTestModel(t)

	m = press(t, m, "enter")
	assert.Equal(t, nav.Chapter{Number: 1}, m.Screen())

	m = press(t, m, "j", "enter")
	assert.Equal(t, nav.Verse{ID: 2, ChapterNumber: 1}, m.Screen())
	assert.True(t, st.IsRead(2))
	assert.False(t, st.IsRead(1))

	m = press(t, m, "left")
	assert.Equal(t, nav.Verse{ID: 1, ChapterNumber: 1}, m.Screen())
	assert.False(t, st.IsRead(1), "swiping does not mark read")

	m = press(t, m, "esc")
	assert.Equal(t, nav.Chapter{Number: 1}, m.Screen())
	assert.Equal(t, 0, m.cursor, "cursor returns to the verse just left")

	m = press(t, m, "esc")
	assert.Equal(t, nav.Home{}, m.Screen())
}

func TestModel_DailyVerseBackGoesToChapter(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, "d")
	assert.Equal(t, nav.Verse{ID: 3, ChapterNumber: 2}, m.Screen())

	m = press(t, m, "esc")
	assert.Equal(t, nav.Chapter{Number: 2}, m.Screen())
}

func TestModel_SettingsClampFontSize(t *testing.T) {
	m, st, _ := newTestModel(t)

	m = press(t, m, "s")
	assert.Equal(t, nav.Settings{}, m.Screen())

	for i := 0; i < 10; i++ {
		m = press(t, m, "+")
	}
	assert.Equal(t, MaxFontSize, st.FontSize())

	for i := 0; i < 20; i++ {
		m = press(t, m, "-")
	}
	assert.Equal(t, MinFontSize, st.FontSize())

	m = press(t, m, "t")
	assert.Equal(t, "midnight", st.Theme())

	m = press(t, m, "esc")
	assert.Equal(t, nav.Home{}, m.Screen())
}

func TestModel_BookmarkFromChapterAndVerse(t *testing.T) {
	m, st, _ := newTestModel(t)

	m = press(t, m, "enter", "b")
	assert.True(t, st.IsBookmarked(1))

	m = press(t, m, "enter", "b")
	assert.False(t, st.IsBookmarked(1))
	assert.Contains(t, m.View(), "not bookmarked")
}

func TestModel_EditNote(t *testing.T) {
	m, st, _ := newTestModel(t)
	m = press(t, m, "enter", "enter", "n")
	require.Equal(t, modeNote, m.mode)

	m = press(t, m, "k", "a", "r", "m", "a")
	assert.Equal(t, nav.Verse{ID: 1, ChapterNumber: 1}, m.Screen(), "keys go to the note editor")

	m = press(t, m, "ctrl+s")
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "karma", st.Note(1))
	assert.Contains(t, m.View(), "Note saved")
}

func TestModel_CancelNoteKeepsState(t *testing.T) {
	m, st, _ := newTestModel(t)
	st.SetNote(1, "existing")
	m = press(t, m, "enter", "enter", "n", "x", "esc")

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "existing", st.Note(1))
}

func TestModel_CopyVerse(t *testing.T) {
	m, _, clip := newTestModel(t)
	m = press(t, m, "enter", "enter")

	_, cmd := m.Update(key("y"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, statusMsg("Copied!"), msg)
	assert.Equal(t, "Dhritarashtra said", clip.text)

	m = send(t, m, msg)
	assert.Contains(t, m.View(), "Copied!")
}

func TestModel_CopyFailureReported(t *testing.T) {
	m, _, clip := newTestModel(t)
	clip.err = errors.New("no clipboard")
	m = press(t, m, "enter", "enter")

	_, cmd := m.Update(key("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, statusMsg("Copy failed"), cmd())
}

func TestModel_SearchFiltersChapters(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, "/", "k", "r", "i", "s", "h", "n", "a", "enter")
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "krishna", m.query())
	assert.NotContains(t, m.View(), "Arjuna Vishada Yoga")

	m = press(t, m, "enter")
	assert.Equal(t, nav.Chapter{Number: 2}, m.Screen())
}

func TestModel_EmptyContentStaysUsable(t *testing.T) {
	st := state.Load(prefs.New(prefs.NewMemory()), "saffron")
	m := NewModel(Options{Index: content.NewIndex(nil, nil, nil, nil), State: st, Clipboard: &fakeClipboard{}, Now: fixedNow})
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m = press(t, m, "enter", "d")
	assert.Equal(t, nav.Home{}, m.Screen())
	assert.NotContains(t, m.View(), "verses read")

	m = press(t, m, "s", "+")
	assert.Equal(t, state.DefaultFontSize+fontSizeStep, st.FontSize())
}

func TestModel_ThemeCycleFromUnknownKey(t *testing.T) {
	st := state.Load(prefs.New(prefs.NewMemory()), "foo")
	m := NewModel(Options{Index: testIndex(), State: st, Clipboard: &fakeClipboard{}, Now: fixedNow})
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m = press(t, m, "s")
	assert.Contains(t, m.View(), "Saffron")

	m = press(t, m, "t")
	assert.Equal(t, "midnight", st.Theme())
	assert.Contains(t, m.View(), "Midnight")
}
