package msgs

import "time"

// PanelFocus is the card grid that owns the cursor.
type PanelFocus int

const (
	FocusFeatured PanelFocus = iota
	FocusProjects
)

func (f PanelFocus) String() string {
	if f == FocusFeatured {
		return "featured"
	}
	return "projects"
}

// AppMode represents the current input mode.
type AppMode int

const (
	ModeBrowse AppMode = iota
	ModeSearch
	ModeCommandPalette
	ModeDetail
	ModeHelp
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "BROWSE"
	case ModeSearch:
		return "SEARCH"
	case ModeCommandPalette:
		return "COMMAND"
	case ModeDetail:
		return "DETAIL"
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// Section is an in-page anchor.
type Section int

const (
	SectionTop Section = iota
	SectionProjects
	SectionAbout
	SectionContact
)

func (s Section) String() string {
	switch s {
	case SectionProjects:
		return "projects"
	case SectionAbout:
		return "about"
	case SectionContact:
		return "contact"
	default:
		return "top"
	}
}

// ToggleThemeMsg flips between light and dark.
type ToggleThemeMsg struct{}

// SelectFilterMsg activates a domain filter (or "All").
type SelectFilterMsg struct {
	Domain string
}

// NextFilterMsg / PrevFilterMsg step through the filter chips.
type NextFilterMsg struct{}
type PrevFilterMsg struct{}

// OpenDetailMsg opens the detail overlay for a project.
type OpenDetailMsg struct {
	ID string
}

// CloseDetailMsg closes the detail overlay.
type CloseDetailMsg struct{}

// CopyLinkMsg copies a project link to the clipboard.
type CopyLinkMsg struct {
	Label string
	URL   string
}

// JumpSectionMsg scrolls the page to an anchor.
type JumpSectionMsg struct {
	Section Section
}

// OpenCommandPaletteMsg opens the command palette.
type OpenCommandPaletteMsg struct{}

// ShowHelpMsg toggles the help overlay.
type ShowHelpMsg struct{}

// SetModeMsg changes the app mode.
type SetModeMsg struct {
	Mode AppMode
}

// ToastMsg shows a toast notification.
type ToastMsg struct {
	Text     string
	IsError  bool
	Duration time.Duration
}

// ThemeSavedMsg reports the result of persisting the theme.
type ThemeSavedMsg struct {
	Err error
}
