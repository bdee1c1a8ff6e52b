// Package nav drives which screen of the reader is active.
package nav

// Screen is one of Home, Settings, Chapter or Verse.
type Screen interface {
	screen()
}

type Home struct{}

type Settings struct{}

type Chapter struct {
	Number int
}

type Verse struct {
	ID            int
	ChapterNumber int
}

func (Home) screen()     {}
func (Settings) screen() {}
func (Chapter) screen()  {}
func (Verse) screen()    {}

// BackTarget is a fixed rule per screen, not a history: a verse always
// returns to its chapter however it was opened.
func BackTarget(s Screen) Screen {
	switch s := s.(type) {
	case Chapter:
		return Home{}
	case Verse:
		return Chapter{Number: s.ChapterNumber}
	case Settings:
		return Home{}
	default:
		return Home{}
	}
}
