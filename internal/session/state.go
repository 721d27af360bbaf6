package session

import (
	"slices"
	"unicode/utf8"

	"github.com/valpere/rapidtran/internal"
	"github.com/valpere/rapidtran/internal/catalog"
	"github.com/valpere/rapidtran/internal/history"
)

// State is everything a translator view renders. Transitions are methods on
// the value that return the next State; they never mutate the receiver.
type State struct {
	SourceText     string
	TargetLang     string
	TranslatedText string
	ErrorMessage   string
	Loading        bool
	History        []internal.HistoryEntry
}

// NewState returns the initial state: empty text, the default target
// language, idle, no error, empty history.
func NewState() State {
	return State{TargetLang: catalog.DefaultTarget}
}

// CharCount is the number of characters in the source text, counted as
// runes. A character outside the BMP counts once.
func (s State) CharCount() int {
	return utf8.RuneCountInString(s.SourceText)
}

// clone detaches the history slice so snapshots can be handed out.
func (s State) clone() State {
	s.History = slices.Clone(s.History)
	return s
}

func (s State) withSourceText(text string) State {
	s.SourceText = text
	return s
}

func (s State) withTargetLang(code string) State {
	s.TargetLang = code
	return s
}

// reject records a local validation failure. Nothing else changes.
func (s State) reject(msg string) State {
	s.ErrorMessage = msg
	return s
}

// begin starts a validated dispatch.
func (s State) begin() State {
	s.ErrorMessage = ""
	s.TranslatedText = ""
	s.Loading = true
	return s
}

// succeed finishes a dispatch with a translation and records it in history.
func (s State) succeed(entry internal.HistoryEntry) State {
	s.TranslatedText = entry.Target
	s.ErrorMessage = ""
	s.History = history.Prepend(s.History, entry, history.Capacity)
	s.Loading = false
	return s
}

// fail finishes a dispatch with an error; the translation stays empty.
func (s State) fail(msg string) State {
	s.TranslatedText = ""
	s.ErrorMessage = msg
	s.Loading = false
	return s
}

func (s State) idle() State {
	s.Loading = false
	return s
}
