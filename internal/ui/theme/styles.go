package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds pre-computed Lip Gloss styles. Every color is adaptive, so the
// same Styles value renders both themes.
type Styles struct {
	Pair Pair

	// Text styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Muted        lipgloss.Style
	Bold         lipgloss.Style
	Error        lipgloss.Style
	Success      lipgloss.Style
	URL          lipgloss.Style
	Key          lipgloss.Style
	Hint         lipgloss.Style
	SectionTitle lipgloss.Style

	// Navigation
	Brand   lipgloss.Style
	NavLink lipgloss.Style
	Toggle  lipgloss.Style

	// Filters
	ChipActive   lipgloss.Style
	ChipInactive lipgloss.Style

	// Cards
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	CardTitle   lipgloss.Style
	Tag         lipgloss.Style

	// Detail overlay
	Overlay        lipgloss.Style
	Button         lipgloss.Style
	ButtonPrimary  lipgloss.Style
	ButtonDisabled lipgloss.Style

	StatusBar lipgloss.Style
	Selected  lipgloss.Style
}

// NewStyles creates a Styles set from a palette pair.
func NewStyles(p Pair) Styles {
	c := p.Color
	text := c(func(t Theme) lipgloss.Color { return t.Text })
	subtext := c(func(t Theme) lipgloss.Color { return t.Subtext })
	muted := c(func(t Theme) lipgloss.Color { return t.Muted })
	accent := c(func(t Theme) lipgloss.Color { return t.Accent })
	base := c(func(t Theme) lipgloss.Color { return t.Base })
	mantle := c(func(t Theme) lipgloss.Color { return t.Mantle })
	surface := c(func(t Theme) lipgloss.Color { return t.Surface })
	overlay := c(func(t Theme) lipgloss.Color { return t.Overlay })
	focused := c(func(t Theme) lipgloss.Color { return t.BorderFocused })
	unfocused := c(func(t Theme) lipgloss.Color { return t.BorderUnfocused })

	return Styles{
		Pair: p,

		Title:    lipgloss.NewStyle().Foreground(text).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(subtext),
		Normal:   lipgloss.NewStyle().Foreground(text),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Bold:     lipgloss.NewStyle().Foreground(text).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(c(func(t Theme) lipgloss.Color { return t.Red })),
		Success:  lipgloss.NewStyle().Foreground(c(func(t Theme) lipgloss.Color { return t.Green })),
		URL:      lipgloss.NewStyle().Foreground(c(func(t Theme) lipgloss.Color { return t.Link })).Underline(true),
		Key:      lipgloss.NewStyle().Foreground(accent).Bold(true),
		Hint:     lipgloss.NewStyle().Foreground(muted).Italic(true),
		SectionTitle: lipgloss.NewStyle().
			Foreground(text).
			Bold(true).
			MarginTop(1),

		Brand:   lipgloss.NewStyle().Foreground(text).Bold(true),
		NavLink: lipgloss.NewStyle().Foreground(subtext),
		Toggle: lipgloss.NewStyle().
			Foreground(text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(unfocused).
			Padding(0, 1),

		ChipActive: lipgloss.NewStyle().
			Foreground(base).
			Background(accent).
			Bold(true).
			Padding(0, 1),
		ChipInactive: lipgloss.NewStyle().
			Foreground(subtext).
			Background(mantle).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(unfocused).
			Padding(0, 1),
		CardFocused: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(focused).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Foreground(text).Bold(true),
		Tag: lipgloss.NewStyle().
			Foreground(subtext).
			Background(surface).
			Padding(0, 1),

		Overlay: lipgloss.NewStyle().
			Foreground(text).
			Background(mantle).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(focused).
			Padding(1, 2),
		Button: lipgloss.NewStyle().
			Foreground(text).
			Background(surface).
			Padding(0, 2),
		ButtonPrimary: lipgloss.NewStyle().
			Foreground(base).
			Background(accent).
			Bold(true).
			Padding(0, 2),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(muted).
			Background(surface).
			Strikethrough(true).
			Padding(0, 2),

		StatusBar: lipgloss.NewStyle().
			Background(surface).
			Foreground(text).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Background(overlay).
			Foreground(text),
	}
}

// Domain returns the label style for a domain.
func (s Styles) Domain(domain string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.Pair.DomainColor(domain)).Bold(true)
}

// Backdrop returns the whitespace color behind a blocking overlay.
func (s Styles) Backdrop() lipgloss.AdaptiveColor {
	return s.Pair.Color(func(t Theme) lipgloss.Color { return t.Overlay })
}
