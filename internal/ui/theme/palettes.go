package theme

import "github.com/charmbracelet/lipgloss"

// CatppuccinLatte is the default light palette.
var CatppuccinLatte = Theme{
	Name:    "Catppuccin Latte",
	Base:    lipgloss.Color("#eff1f5"),
	Mantle:  lipgloss.Color("#e6e9ef"),
	Surface: lipgloss.Color("#ccd0da"),
	Overlay: lipgloss.Color("#9ca0b0"),

	Text:    lipgloss.Color("#4c4f69"),
	Subtext: lipgloss.Color("#6c6f85"),
	Muted:   lipgloss.Color("#8c8fa1"),

	Accent: lipgloss.Color("#209fb5"),
	Link:   lipgloss.Color("#1e66f5"),
	Red:    lipgloss.Color("#d20f39"),
	Green:  lipgloss.Color("#40a02b"),
	Yellow: lipgloss.Color("#df8e1d"),
	Peach:  lipgloss.Color("#fe640b"),
	Teal:   lipgloss.Color("#179299"),
	Pink:   lipgloss.Color("#ea76cb"),

	BorderFocused:   lipgloss.Color("#209fb5"),
	BorderUnfocused: lipgloss.Color("#acb0be"),
}

// CatppuccinMocha is the default dark palette.
var CatppuccinMocha = Theme{
	Name:    "Catppuccin Mocha",
	Base:    lipgloss.Color("#1e1e2e"),
	Mantle:  lipgloss.Color("#181825"),
	Surface: lipgloss.Color("#313244"),
	Overlay: lipgloss.Color("#45475a"),

	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),
	Muted:   lipgloss.Color("#6c7086"),

	Accent: lipgloss.Color("#74c7ec"),
	Link:   lipgloss.Color("#89b4fa"),
	Red:    lipgloss.Color("#f38ba8"),
	Green:  lipgloss.Color("#a6e3a1"),
	Yellow: lipgloss.Color("#f9e2af"),
	Peach:  lipgloss.Color("#fab387"),
	Teal:   lipgloss.Color("#94e2d5"),
	Pink:   lipgloss.Color("#f5c2e7"),

	BorderFocused:   lipgloss.Color("#74c7ec"),
	BorderUnfocused: lipgloss.Color("#585b70"),
}

// Nord is an alternative dark palette.
var Nord = Theme{
	Name:    "Nord",
	Base:    lipgloss.Color("#2e3440"),
	Mantle:  lipgloss.Color("#3b4252"),
	Surface: lipgloss.Color("#434c5e"),
	Overlay: lipgloss.Color("#4c566a"),

	Text:    lipgloss.Color("#eceff4"),
	Subtext: lipgloss.Color("#d8dee9"),
	Muted:   lipgloss.Color("#7b88a1"),

	Accent: lipgloss.Color("#88c0d0"),
	Link:   lipgloss.Color("#81a1c1"),
	Red:    lipgloss.Color("#bf616a"),
	Green:  lipgloss.Color("#a3be8c"),
	Yellow: lipgloss.Color("#ebcb8b"),
	Peach:  lipgloss.Color("#d08770"),
	Teal:   lipgloss.Color("#8fbcbb"),
	Pink:   lipgloss.Color("#b48ead"),

	BorderFocused:   lipgloss.Color("#88c0d0"),
	BorderUnfocused: lipgloss.Color("#4c566a"),
}

// SolarizedLight is an alternative light palette.
var SolarizedLight = Theme{
	Name:    "Solarized Light",
	Base:    lipgloss.Color("#fdf6e3"),
	Mantle:  lipgloss.Color("#eee8d5"),
	Surface: lipgloss.Color("#e4ddc8"),
	Overlay: lipgloss.Color("#93a1a1"),

	Text:    lipgloss.Color("#586e75"),
	Subtext: lipgloss.Color("#657b83"),
	Muted:   lipgloss.Color("#93a1a1"),

	Accent: lipgloss.Color("#268bd2"),
	Link:   lipgloss.Color("#268bd2"),
	Red:    lipgloss.Color("#dc322f"),
	Green:  lipgloss.Color("#859900"),
	Yellow: lipgloss.Color("#b58900"),
	Peach:  lipgloss.Color("#cb4b16"),
	Teal:   lipgloss.Color("#2aa198"),
	Pink:   lipgloss.Color("#d33682"),

	BorderFocused:   lipgloss.Color("#268bd2"),
	BorderUnfocused: lipgloss.Color("#93a1a1"),
}
