package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"gita-tui/internal/content"
	"gita-tui/internal/nav"
	"gita-tui/internal/theme"
	"gita-tui/internal/views"
)

// page is the resolved form of a nav.Screen with its content looked up.
type page interface {
	title() string
	help() string
	// render returns the body and the line holding the list cursor, or -1.
	render(m *Model) (string, int)
	handleKey(m *Model, key string) tea.Cmd
}

// page is the one place a nav.Screen is taken apart.
func (m *Model) page() page {
	switch s := m.nav.Current().(type) {
	case nav.Chapter:
		ch, _ := m.index.ChapterByNumber(s.Number)
		return chapterPage{
			chapter: ch,
			verses:  views.FilterVerses(m.query(), m.index.VersesForChapter(s.Number)),
		}
	case nav.Verse:
		v, _ := m.index.VerseByID(s.ID)
		return versePage{
			verse:        v,
			neighbors:    m.nav.Neighbors(),
			translations: m.index.TranslationsForVerse(s.ID),
			commentaries: m.index.CommentariesForVerse(s.ID),
		}
	case nav.Settings:
		return settingsPage{}
	default:
		return homePage{chapters: views.FilterChapters(m.query(), m.index.Chapters())}
	}
}

type homePage struct {
	chapters []content.Chapter
}

func (homePage) title() string { return "Gita." }

func (homePage) help() string {
	return "j/k: move | enter: open | d: verse of the day | /: search | s: settings | q: quit"
}

func (p homePage) render(m *Model) (string, int) {
	st := m.styles
	var sb strings.Builder

	card := st.Title.Render("Verse of the Day.") + "\n" +
		st.Text.Width(m.textWidth()).Render(m.daily.Preview(160))
	if m.daily.ID != 0 {
		card += "\n" + st.Muted.Render(m.daily.Label())
	}
	sb.WriteString(st.Card.Render(card) + "\n")

	if q := m.query(); q != "" && m.mode != modeSearch {
		sb.WriteString(st.Muted.Render(fmt.Sprintf("Search: %q (esc to clear)", q)) + "\n")
	}

	read, total := m.state.ReadCount(), m.index.VerseCount()
	if pct, ok := views.Progress(read, total); ok {
		sb.WriteString(m.bar.ViewAs(float64(read)/float64(total)) + "\n")
		sb.WriteString(st.Muted.Render(fmt.Sprintf("%d of %d verses read (%d%%)", read, total, pct)) + "\n")
	}
	sb.WriteString("\n")

	if len(p.chapters) == 0 {
		sb.WriteString(st.Muted.Render("No chapters."))
		return sb.String(), -1
	}

	m.cursor = clamp(m.cursor, 0, len(p.chapters)-1)
	cursorLine := -1
	for i, ch := range p.chapters {
		marks := fmt.Sprintf("%d verses", ch.VersesCount)
		if n := bookmarksIn(m, ch.ChapterNumber); n > 0 {
			marks += fmt.Sprintf("  ♥ %d", n)
		}

		name := fmt.Sprintf("%d. %s", ch.ChapterNumber, ch.NameTransliterated)
		if i == m.cursor {
			cursorLine = lineCount(&sb)
			sb.WriteString(st.Selected.Render("› "+name) + "\n")
		} else {
			sb.WriteString(st.Text.Render("  "+name) + "\n")
		}
		sb.WriteString("  " + st.Italic.Render(ch.Name) + st.Muted.Render("  |  "+marks) + "\n\n")
	}
	return sb.String(), cursorLine
}

func (p homePage) handleKey(m *Model, key string) tea.Cmd {
	switch key {
	case "j", "down":
		m.moveCursor(1, len(p.chapters))
	case "k", "up":
		m.moveCursor(-1, len(p.chapters))
	case "enter":
		if m.cursor < len(p.chapters) {
			m.nav.SelectChapter(p.chapters[m.cursor].ChapterNumber)
		}
	case "d":
		m.nav.OpenDailyVerse(m.daily)
	case "s":
		m.nav.OpenSettings()
	case "/":
		return m.startSearch()
	case "esc":
		m.search.SetValue("")
	}
	return nil
}

func bookmarksIn(m *Model, chapter int) int {
	n := 0
	for _, id := range m.state.Bookmarks() {
		if v, ok := m.index.VerseByID(id); ok && v.ChapterNumber == chapter {
			n++
		}
	}
	return n
}

type chapterPage struct {
	chapter content.Chapter
	verses  []content.Verse
}

func (chapterPage) title() string { return "Chapters." }

func (chapterPage) help() string {
	return "j/k: move | enter: open | b: bookmark | /: search | esc: back | q: quit"
}

func (p chapterPage) render(m *Model) (string, int) {
	st := m.styles
	var sb strings.Builder

	sb.WriteString(st.Title.Render(fmt.Sprintf("Chapter %d: %s", p.chapter.ChapterNumber, p.chapter.NameMeaning)) + "\n")
	summary := st.Section.Render("Summary") + "\n" + st.Text.Width(m.textWidth()).Render(p.chapter.ChapterSummary)
	sb.WriteString(st.Card.Render(summary) + "\n\n")
	sb.WriteString(st.Section.Render(fmt.Sprintf("Verses (%d)", p.chapter.VersesCount)) + "\n\n")

	if len(p.verses) == 0 {
		sb.WriteString(st.Muted.Render("No verses."))
		return sb.String(), -1
	}

	m.cursor = clamp(m.cursor, 0, len(p.verses)-1)
	cursorLine := -1
	for i, v := range p.verses {
		marks := "○"
		if m.state.IsRead(v.ID) {
			marks = "●"
		}
		if m.state.IsBookmarked(v.ID) {
			marks += " ♥"
		}
		if m.state.HasNote(v.ID) {
			marks += " ✎"
		}

		label := marks + " " + v.Label()
		if i == m.cursor {
			cursorLine = lineCount(&sb)
			sb.WriteString(st.Selected.Render("› "+label) + "\n")
		} else {
			sb.WriteString(st.Text.Render("  "+label) + "\n")
		}
		sb.WriteString(st.Muted.Width(m.textWidth()).Render("  "+v.Preview(120)) + "\n\n")
	}
	return sb.String(), cursorLine
}

func (p chapterPage) handleKey(m *Model, key string) tea.Cmd {
	switch key {
	case "j", "down":
		m.moveCursor(1, len(p.verses))
	case "k", "up":
		m.moveCursor(-1, len(p.verses))
	case "enter":
		if m.cursor < len(p.verses) {
			m.nav.SelectVerse(p.verses[m.cursor].ID)
		}
	case "b":
		if m.cursor < len(p.verses) {
			m.state.ToggleBookmark(p.verses[m.cursor].ID)
		}
	case "/":
		return m.startSearch()
	case "esc", "backspace":
		m.nav.Back()
	}
	return nil
}

type versePage struct {
	verse        content.Verse
	neighbors    views.Neighbors
	translations []content.Translation
	commentaries []content.Commentary
}

func (versePage) title() string { return "Verse." }

func (p versePage) help() string {
	parts := []string{}
	if p.neighbors.HasPrev {
		parts = append(parts, "h: previous")
	}
	if p.neighbors.HasNext {
		parts = append(parts, "l: next")
	}
	parts = append(parts, "b: bookmark", "n: note", "y: copy", "esc: back", "q: quit")
	return strings.Join(parts, " | ")
}

func (p versePage) render(m *Model) (string, int) {
	st := m.styles
	width := m.textWidth()
	var sb strings.Builder

	main := st.Title.Render(p.verse.Label()) + "\n\n" +
		st.Text.Width(width).Render(strings.TrimSpace(p.verse.Text))
	sb.WriteString(st.Card.Render(main) + "\n")

	status := "♡ not bookmarked"
	if m.state.IsBookmarked(p.verse.ID) {
		status = "♥ bookmarked"
	}
	sb.WriteString(st.Accent.Render(status) + "\n")
	if m.state.HasNote(p.verse.ID) {
		sb.WriteString(st.Section.Render("✎ Note") + "\n" + st.Italic.Width(width).Render(m.state.Note(p.verse.ID)) + "\n")
	}
	sb.WriteString("\n")

	writeInfo(&sb, st, width, "Transliteration", p.verse.Transliteration)
	writeInfo(&sb, st, width, "Word Meanings", p.verse.WordMeanings)

	if len(p.translations) > 0 {
		sb.WriteString(st.Section.Render(fmt.Sprintf("Translations (%d)", len(p.translations))) + "\n\n")
		for _, t := range p.translations {
			writeAuthored(&sb, st, width, t.Author(), t.Description)
		}
	}
	if len(p.commentaries) > 0 {
		sb.WriteString(st.Section.Render(fmt.Sprintf("Commentaries (%d)", len(p.commentaries))) + "\n\n")
		for _, c := range p.commentaries {
			writeAuthored(&sb, st, width, c.Author(), c.Description)
		}
	}
	return sb.String(), -1
}

func writeInfo(sb *strings.Builder, st theme.Styles, width int, title, body string) {
	sb.WriteString(st.Section.Render(title) + "\n")
	sb.WriteString(st.Italic.Width(width).Render(body) + "\n\n")
}

func writeAuthored(sb *strings.Builder, st theme.Styles, width int, author, body string) {
	sb.WriteString(st.Title.Render(author) + "\n")
	sb.WriteString(st.Text.Width(width).Render(strings.TrimSpace(body)) + "\n\n")
}

func (p versePage) handleKey(m *Model, key string) tea.Cmd {
	switch key {
	case "h", "left":
		m.nav.Prev()
	case "l", "right":
		m.nav.Next()
	case "b":
		m.state.ToggleBookmark(p.verse.ID)
	case "n":
		return m.startNote(p.verse.ID)
	case "y":
		return copyText(m.clip, p.verse.Text)
	case "esc", "backspace":
		m.nav.Back()
	}
	return nil
}

type settingsPage struct{}

func (settingsPage) title() string { return "Settings." }

func (settingsPage) help() string {
	return "+/-: font size | t: theme | esc: back | q: quit"
}

func (settingsPage) render(m *Model) (string, int) {
	st := m.styles
	var sb strings.Builder

	size := m.state.FontSize()
	sb.WriteString(st.Title.Render("Font Size") + "\n")
	sb.WriteString(st.Text.Render(fmt.Sprintf("%d sp  (%d–%d)", size, MinFontSize, MaxFontSize)) + "\n")
	frac := float64(clamp(size, MinFontSize, MaxFontSize)-MinFontSize) / float64(MaxFontSize-MinFontSize)
	sb.WriteString(m.bar.ViewAs(frac) + "\n")
	sb.WriteString(st.Muted.Render(fmt.Sprintf("Reading width: %d columns", m.textWidth())) + "\n\n")

	sb.WriteString(st.Title.Render("Theme") + "\n")
	sb.WriteString(st.Text.Render(theme.Get(m.state.Theme()).Name) + "\n")
	return sb.String(), -1
}

func (settingsPage) handleKey(m *Model, key string) tea.Cmd {
	switch key {
	case "+", "=":
		m.setFontSize(m.state.FontSize() + fontSizeStep)
	case "-", "_":
		m.setFontSize(m.state.FontSize() - fontSizeStep)
	case "t":
		m.cycleTheme()
	case "esc", "backspace":
		m.nav.Back()
	}
	return nil
}
