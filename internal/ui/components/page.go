package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/folio/internal/core/catalog"
	"github.com/sadopc/folio/internal/core/state"
	"github.com/sadopc/folio/internal/ui/theme"
)

// NavBar renders the top bar: owner name, section anchors and the theme toggle.
// The toggle names the theme it switches to.
func NavBar(name string, t state.Theme, width int, s theme.Styles) string {
	brand := s.Brand.Render(name)

	label := "Dark"
	if t.IsDark() {
		label = "Light"
	}
	links := strings.Join([]string{
		s.Key.Render("1") + s.NavLink.Render(" Projects"),
		s.Key.Render("2") + s.NavLink.Render(" About"),
		s.Key.Render("3") + s.NavLink.Render(" Contact"),
	}, "   ")
	toggle := s.Toggle.Render(s.Key.Render("t") + " " + label)
	right := lipgloss.JoinHorizontal(lipgloss.Center, links, "  ", toggle)

	gap := width - lipgloss.Width(brand) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, brand, strings.Repeat(" ", gap), right)
}

// Hero renders the greeting block.
func Hero(p catalog.Profile, width int, s theme.Styles) string {
	title := s.Title.Render("Hi, I'm " + p.Name)
	tagline := s.Subtitle.Width(width).Render(p.Tagline)
	hint := s.Hint.Render("Press 1 to view projects")
	return lipgloss.JoinVertical(lipgloss.Left, "", title, tagline, "", hint)
}

// About renders the about section.
func About(p catalog.Profile, width int, s theme.Styles) string {
	body := s.Normal.Width(min(width, 80)).Render(p.About)
	return lipgloss.JoinVertical(lipgloss.Left, s.SectionTitle.Render("About"), body)
}

// Contact renders the contact section. The mailto link is shown as-is.
func Contact(p catalog.Profile, s theme.Styles) string {
	line := s.Normal.Render("Email: ") + s.URL.Render(p.Email)
	return lipgloss.JoinVertical(lipgloss.Left, s.SectionTitle.Render("Contact"), line)
}

// SectionHeader renders a section title with optional trailing content.
func SectionHeader(title, right string, width int, s theme.Styles) string {
	t := s.SectionTitle.Render(title)
	if right == "" {
		return t
	}
	gap := width - lipgloss.Width(t) - lipgloss.Width(right)
	if gap < 2 {
		return lipgloss.JoinVertical(lipgloss.Left, t, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, t, strings.Repeat(" ", gap), right)
}
