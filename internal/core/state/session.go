package state

import (
	"fmt"
	"strings"

	"github.com/sadopc/folio/internal/core/filter"
)

// Theme is the light/dark display preference.
type Theme int

const (
	Light Theme = iota
	Dark
)

// Toggle flips between Light and Dark.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether t is Dark.
func (t Theme) IsDark() bool {
	return t == Dark
}

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// ParseTheme parses "light" or "dark", case-insensitively.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("unknown theme %q (must be light or dark)", s)
	}
}

// Selection tracks which project, if any, is open in the detail overlay.
// The zero value is closed.
type Selection struct {
	id string
}

// Open selects the project with the given id, replacing any previous selection.
func (s Selection) Open(id string) Selection {
	return Selection{id: id}
}

// Close clears the selection.
func (s Selection) Close() Selection {
	return Selection{}
}

// IsOpen reports whether a project is selected.
func (s Selection) IsOpen() bool {
	return s.id != ""
}

// ProjectID returns the selected project id, or "" when closed.
func (s Selection) ProjectID() string {
	return s.id
}

// Session is the mutable UI state of one running session.
type Session struct {
	Theme     Theme
	Filter    string
	Selection Selection
}

// NewSession returns the initial session state: light theme, no filter, nothing open.
func NewSession() Session {
	return Session{
		Theme:  Light,
		Filter: filter.All,
	}
}

// Event is a discrete user input that changes the session.
type Event interface {
	event()
}

// ToggleTheme flips the theme.
type ToggleTheme struct{}

// SelectFilter makes Domain the active filter.
type SelectFilter struct {
	Domain string
}

// OpenDetail opens the detail overlay for a project.
type OpenDetail struct {
	ID string
}

// CloseDetail closes the detail overlay.
type CloseDetail struct{}

func (ToggleTheme) event()  {}
func (SelectFilter) event() {}
func (OpenDetail) event()   {}
func (CloseDetail) event()  {}

// Reduce returns the session that results from applying ev to s.
func Reduce(s Session, ev Event) Session {
	switch ev := ev.(type) {
	case ToggleTheme:
		s.Theme = s.Theme.Toggle()
	case SelectFilter:
		s.Filter = ev.Domain
	case OpenDetail:
		if ev.ID == "" {
			s.Selection = s.Selection.Close()
		} else {
			s.Selection = s.Selection.Open(ev.ID)
		}
	case CloseDetail:
		s.Selection = s.Selection.Close()
	}
	return s
}
