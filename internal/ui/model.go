package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"gita-tui/internal/content"
	"gita-tui/internal/nav"
	"gita-tui/internal/state"
	"gita-tui/internal/theme"
	"gita-tui/internal/views"
)

type inputMode int

const (
	modeBrowse inputMode = iota
	modeSearch
	modeNote
)

// Font size bounds enforced by the Settings screen; the state store keeps
// whatever it is given.
const (
	MinFontSize  = 12
	MaxFontSize  = 30
	fontSizeStep = 2
	noteHeight   = 5
)

type Options struct {
	Index     *content.Index
	State     *state.AppState
	Clipboard Clipboard        // defaults to the system clipboard
	Now       func() time.Time // defaults to time.Now
}

type Model struct {
	index    *content.Index
	state    *state.AppState
	nav      *nav.Controller
	clip     Clipboard
	styles   theme.Styles
	viewport viewport.Model
	search   textinput.Model
	note     textarea.Model
	bar      progress.Model
	mode     inputMode
	cursor   int
	daily    content.Verse
	width    int
	height   int
	ready    bool
	status   string
}

func NewModel(opts Options) Model {
	if opts.Clipboard == nil {
		opts.Clipboard = systemClipboard{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "Search chapters."
	ti.CharLimit = 80
	ti.Width = 50

	ta := textarea.New()
	ta.Placeholder = "Your note"
	ta.ShowLineNumbers = false
	ta.SetHeight(noteHeight)

	return Model{
		index:  opts.Index,
		state:  opts.State,
		nav:    nav.NewController(opts.Index, opts.State),
		clip:   opts.Clipboard,
		styles: theme.Get(opts.State.Theme()).Styles(),
		search: ti,
		note:   ta,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		mode:   modeBrowse,
		daily:  views.DailyVerse(opts.Index.Verses(), opts.Now()),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Screen reports the active screen.
func (m Model) Screen() nav.Screen {
	return m.nav.Current()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height)
			m.ready = true
		}
		m.note.SetWidth(msg.Width - 2)
		m.bar.Width = min(40, msg.Width-4)

	case statusMsg:
		m.status = string(msg)

	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)

	case tea.KeyMsg:
		m.status = ""
		switch m.mode {
		case modeSearch:
			cmd = m.updateSearch(msg)
		case modeNote:
			cmd = m.updateNote(msg)
		default:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "pgdown":
				m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
			case "pgup":
				m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
			default:
				before := m.nav.Current()
				cmd = m.page().handleKey(&m, msg.String())
				if after := m.nav.Current(); after != before {
					m.screenChanged(before, after)
				}
			}
		}
	}

	m.refresh()
	return m, cmd
}

func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.mode = modeBrowse
		m.search.Blur()
		return nil
	case "esc":
		m.mode = modeBrowse
		m.search.Blur()
		m.search.SetValue("")
		m.cursor = 0
		return nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.cursor = 0
		m.viewport.GotoTop()
	}
	return cmd
}

func (m *Model) updateNote(msg tea.KeyMsg) tea.Cmd {
	v, ok := m.nav.Current().(nav.Verse)
	if !ok {
		m.mode = modeBrowse
		return nil
	}

	switch msg.String() {
	case "ctrl+s":
		m.state.SetNote(v.ID, m.note.Value())
		m.mode = modeBrowse
		m.note.Blur()
		if m.state.HasNote(v.ID) {
			m.status = "Note saved"
		} else {
			m.status = "Note removed"
		}
		return nil
	case "esc":
		m.mode = modeBrowse
		m.note.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.note, cmd = m.note.Update(msg)
	return cmd
}

func (m *Model) startSearch() tea.Cmd {
	m.mode = modeSearch
	return m.search.Focus()
}

func (m *Model) startNote(id int) tea.Cmd {
	m.mode = modeNote
	m.note.SetValue(m.state.Note(id))
	return m.note.Focus()
}

func (m *Model) query() string {
	return m.search.Value()
}

// screenChanged puts the list cursor back on the item the reader came from.
func (m *Model) screenChanged(before, after nav.Screen) {
	m.cursor = 0
	m.viewport.GotoTop()

	switch after := after.(type) {
	case nav.Home:
		if ch, ok := before.(nav.Chapter); ok {
			for i, c := range views.FilterChapters(m.query(), m.index.Chapters()) {
				if c.ChapterNumber == ch.Number {
					m.cursor = i
				}
			}
		}
	case nav.Chapter:
		if v, ok := before.(nav.Verse); ok {
			for i, verse := range views.FilterVerses(m.query(), m.index.VersesForChapter(after.Number)) {
				if verse.ID == v.ID {
					m.cursor = i
				}
			}
		}
	}
}

func (m *Model) moveCursor(delta, n int) {
	m.cursor = clamp(m.cursor+delta, 0, max(0, n-1))
}

func (m *Model) setFontSize(size int) {
	m.state.UpdateFontSize(clamp(size, MinFontSize, MaxFontSize))
}

func (m *Model) cycleTheme() {
	next := theme.Next(m.state.Theme())
	m.state.SetTheme(next.Key)
	m.styles = next.Styles()
}

// textWidth maps the font size preference to a reading column width.
func (m *Model) textWidth() int {
	w := m.state.FontSize() * 4
	if m.width > 0 {
		w = min(w, m.width-4)
	}
	return max(w, 20)
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}

	headerHeight := 2
	if m.mode == modeSearch {
		headerHeight++
	}
	footerHeight := 1
	if m.mode == modeNote {
		footerHeight = noteHeight + 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-headerHeight-footerHeight)

	body, cursorLine := m.page().render(m)
	m.viewport.SetContent(body)

	if cursorLine >= 0 {
		if cursorLine < m.viewport.YOffset {
			m.viewport.SetYOffset(cursorLine)
		} else if cursorLine >= m.viewport.YOffset+m.viewport.Height {
			m.viewport.SetYOffset(cursorLine - m.viewport.Height + 2)
		}
	}
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	p := m.page()

	header := m.styles.Header.Render(p.title())
	if m.mode == modeSearch {
		header += "\n" + m.search.View()
	}

	var footer string
	switch {
	case m.mode == modeNote:
		footer = m.styles.Section.Render("Add Note/Highlight (ctrl+s: save | esc: cancel)") + "\n" + m.note.View()
	case m.status != "":
		footer = m.styles.Accent.Render(m.status)
	default:
		footer = m.styles.Help.Render(p.help())
	}

	return fmt.Sprintf("%s\n%s\n%s", header, m.viewport.View(), footer)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func lineCount(sb *strings.Builder) int {
	return strings.Count(sb.String(), "\n")
}
