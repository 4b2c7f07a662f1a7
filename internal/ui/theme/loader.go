package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// yamlTheme is the YAML representation of a palette.
type yamlTheme struct {
	Name    string `yaml:"name"`
	Base    string `yaml:"base"`
	Mantle  string `yaml:"mantle"`
	Surface string `yaml:"surface"`
	Overlay string `yaml:"overlay"`

	Text    string `yaml:"text"`
	Subtext string `yaml:"subtext"`
	Muted   string `yaml:"muted"`

	Accent string `yaml:"accent"`
	Link   string `yaml:"link"`
	Red    string `yaml:"red"`
	Green  string `yaml:"green"`
	Yellow string `yaml:"yellow"`
	Peach  string `yaml:"peach"`
	Teal   string `yaml:"teal"`
	Pink   string `yaml:"pink"`

	BorderFocused   string `yaml:"border_focused"`
	BorderUnfocused string `yaml:"border_unfocused"`
}

// LoadCustomTheme loads a palette from a YAML file. Colors left out of the
// file are empty; Resolve fills them from a built-in palette.
func LoadCustomTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file: %w", err)
	}

	var yt yamlTheme
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return Theme{}, fmt.Errorf("parsing theme YAML: %w", err)
	}

	if yt.Name == "" {
		base := filepath.Base(path)
		yt.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return Theme{
		Name:            yt.Name,
		Base:            lipgloss.Color(yt.Base),
		Mantle:          lipgloss.Color(yt.Mantle),
		Surface:         lipgloss.Color(yt.Surface),
		Overlay:         lipgloss.Color(yt.Overlay),
		Text:            lipgloss.Color(yt.Text),
		Subtext:         lipgloss.Color(yt.Subtext),
		Muted:           lipgloss.Color(yt.Muted),
		Accent:          lipgloss.Color(yt.Accent),
		Link:            lipgloss.Color(yt.Link),
		Red:             lipgloss.Color(yt.Red),
		Green:           lipgloss.Color(yt.Green),
		Yellow:          lipgloss.Color(yt.Yellow),
		Peach:           lipgloss.Color(yt.Peach),
		Teal:            lipgloss.Color(yt.Teal),
		Pink:            lipgloss.Color(yt.Pink),
		BorderFocused:   lipgloss.Color(yt.BorderFocused),
		BorderUnfocused: lipgloss.Color(yt.BorderUnfocused),
	}, nil
}

// LoadCustomThemes loads all YAML palettes from a directory.
func LoadCustomThemes(dir string) map[string]Theme {
	themes := make(map[string]Theme)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return themes
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		t, err := LoadCustomTheme(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		themes[normalizeKey(t.Name)] = t
	}
	return themes
}

// Resolve looks up a palette by name: built-ins, then ~/.config/folio/themes,
// then fallback. Custom palettes inherit missing colors from fallback.
func Resolve(name string, fallback Theme) Theme {
	if name == "" {
		return fallback
	}
	if t, ok := Get(name); ok {
		return t
	}

	home, err := os.UserHomeDir()
	if err == nil {
		customs := LoadCustomThemes(filepath.Join(home, ".config", "folio", "themes"))
		if t, ok := customs[normalizeKey(name)]; ok {
			return merge(t, fallback)
		}
	}

	return fallback
}

// ResolvePair resolves the light and dark palettes by name.
func ResolvePair(light, dark string) Pair {
	def := DefaultPair()
	return Pair{
		Light: Resolve(light, def.Light),
		Dark:  Resolve(dark, def.Dark),
	}
}

func merge(t, fallback Theme) Theme {
	pick := func(c, f lipgloss.Color) lipgloss.Color {
		if c == "" {
			return f
		}
		return c
	}
	t.Base = pick(t.Base, fallback.Base)
	t.Mantle = pick(t.Mantle, fallback.Mantle)
	t.Surface = pick(t.Surface, fallback.Surface)
	t.Overlay = pick(t.Overlay, fallback.Overlay)
	t.Text = pick(t.Text, fallback.Text)
	t.Subtext = pick(t.Subtext, fallback.Subtext)
	t.Muted = pick(t.Muted, fallback.Muted)
	t.Accent = pick(t.Accent, fallback.Accent)
	t.Link = pick(t.Link, fallback.Link)
	t.Red = pick(t.Red, fallback.Red)
	t.Green = pick(t.Green, fallback.Green)
	t.Yellow = pick(t.Yellow, fallback.Yellow)
	t.Peach = pick(t.Peach, fallback.Peach)
	t.Teal = pick(t.Teal, fallback.Teal)
	t.Pink = pick(t.Pink, fallback.Pink)
	t.BorderFocused = pick(t.BorderFocused, fallback.BorderFocused)
	t.BorderUnfocused = pick(t.BorderUnfocused, fallback.BorderUnfocused)
	return t
}
