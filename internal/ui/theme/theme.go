package theme

import (
	"hash/fnv"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the colors of one palette.
type Theme struct {
	Name string

	Base    lipgloss.Color
	Mantle  lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color

	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color

	Accent lipgloss.Color // active filter, primary buttons
	Link   lipgloss.Color
	Red    lipgloss.Color
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Peach  lipgloss.Color
	Teal   lipgloss.Color
	Pink   lipgloss.Color

	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color
}

// Pair couples the palettes used for the light and dark themes. Colors
// built from a Pair follow lipgloss' dark-background flag.
type Pair struct {
	Light Theme
	Dark  Theme
}

// DefaultPair returns Catppuccin Latte for light and Catppuccin Mocha for dark.
func DefaultPair() Pair {
	return Pair{Light: CatppuccinLatte, Dark: CatppuccinMocha}
}

// Color picks the same role from both palettes.
func (p Pair) Color(role func(Theme) lipgloss.Color) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Light: string(role(p.Light)),
		Dark:  string(role(p.Dark)),
	}
}

var domainRoles = []func(Theme) lipgloss.Color{
	func(t Theme) lipgloss.Color { return t.Peach },
	func(t Theme) lipgloss.Color { return t.Teal },
	func(t Theme) lipgloss.Color { return t.Pink },
	func(t Theme) lipgloss.Color { return t.Green },
	func(t Theme) lipgloss.Color { return t.Yellow },
}

// DomainColor returns a stable accent color for a domain label.
func (p Pair) DomainColor(domain string) lipgloss.AdaptiveColor {
	h := fnv.New32a()
	h.Write([]byte(domain))
	return p.Color(domainRoles[h.Sum32()%uint32(len(domainRoles))])
}
