package ui

import (
	"log"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Clipboard receives copied verse text.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

type statusMsg string

func copyText(clip Clipboard, text string) tea.Cmd {
	return func() tea.Msg {
		if err := clip.WriteAll(text); err != nil {
			log.Printf("ui: copy to clipboard: %v", err)
			return statusMsg("Copy failed")
		}
		return statusMsg("Copied!")
	}
}
