package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all application keybindings.
type KeyMap struct {
	// Global
	Quit           key.Binding
	QuitSoft       key.Binding
	CommandPalette key.Binding
	Help           key.Binding
	ToggleTheme    key.Binding

	// Filters
	PrevFilter key.Binding
	NextFilter key.Binding
	AllFilter  key.Binding
	Search     key.Binding

	// Cards
	SwitchGrid key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Open       key.Binding

	// Page
	JumpProjects key.Binding
	JumpAbout    key.Binding
	JumpContact  key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Top          key.Binding
	Bottom       key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		QuitSoft: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		CommandPalette: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("[", "H"),
			key.WithHelp("[", "prev filter"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("]", "L"),
			key.WithHelp("]", "next filter"),
		),
		AllFilter: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all projects"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		SwitchGrid: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "featured/projects"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		JumpProjects: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "projects"),
		),
		JumpAbout: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "about"),
		),
		JumpContact: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "contact"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
	}
}
