package state

import (
	"log"

	"github.com/charmbracelet/lipgloss"
)

// Flag receives the current theme. It is the process-wide switch the
// renderer reads to pick a color scheme.
type Flag interface {
	SetDark(dark bool) error
}

// LipglossFlag sets lipgloss' dark-background flag, which decides the
// branch of every lipgloss.AdaptiveColor.
type LipglossFlag struct{}

// SetDark implements Flag.
func (LipglossFlag) SetDark(dark bool) error {
	lipgloss.SetHasDarkBackground(dark)
	return nil
}

// Store holds the session state and mirrors the theme onto a Flag.
type Store struct {
	session Session
	flag    Flag
}

// NewStore creates a store and writes the initial theme to flag.
// A nil flag disables propagation.
func NewStore(initial Session, flag Flag) *Store {
	s := &Store{session: initial, flag: flag}
	s.propagate()
	return s
}

// Session returns the current session state.
func (s *Store) Session() Session {
	return s.session
}

// Dispatch applies ev and returns the new session.
func (s *Store) Dispatch(ev Event) Session {
	prev := s.session.Theme
	s.session = Reduce(s.session, ev)
	if s.session.Theme != prev {
		s.propagate()
	}
	return s.session
}

func (s *Store) propagate() {
	if s.flag == nil {
		return
	}
	if err := s.flag.SetDark(s.session.Theme.IsDark()); err != nil {
		log.Printf("theme flag: %v", err)
	}
}
