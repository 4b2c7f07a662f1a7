package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/folio/internal/ui/theme"
	"github.com/sadopc/folio/internal/ui/view"
)

// Grid renders cards in rows of a fixed column count.
type Grid struct {
	Cards     []view.Card
	Columns   int
	CardWidth int
	Gutter    int
	Cursor    int  // index of the highlighted card, -1 for none
	Focused   bool // whether this grid owns the cursor
}

// View renders the grid. An empty grid renders a hint instead.
func (g Grid) View(s theme.Styles, empty string) string {
	if len(g.Cards) == 0 {
		return s.Hint.Render(empty)
	}
	return lipgloss.JoinVertical(lipgloss.Left, g.Rows(s)...)
}

// Rows renders each row of cards separately so callers can measure them.
func (g Grid) Rows(s theme.Styles) []string {
	cols := g.Columns
	if cols < 1 {
		cols = 1
	}

	var rows []string
	for start := 0; start < len(g.Cards); start += cols {
		end := min(start+cols, len(g.Cards))
		var cells []string
		for i := start; i < end; i++ {
			if i > start && g.Gutter > 0 {
				cells = append(cells, strings.Repeat(" ", g.Gutter))
			}
			cells = append(cells, RenderCard(g.Cards[i], g.CardWidth, g.Focused && i == g.Cursor, s))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return rows
}

// RenderCard renders one project card: title, summary, the first tags,
// domain and the details control.
func RenderCard(c view.Card, width int, focused bool, s theme.Styles) string {
	box := s.Card
	if focused {
		box = s.CardFocused
	}
	inner := width - box.GetHorizontalFrameSize()
	if inner < 8 {
		inner = 8
	}

	title := s.CardTitle.Width(inner).Render(c.Title)
	short := s.Subtitle.Width(inner).Render(c.Short)

	tags := make([]string, len(c.Tags))
	for i, t := range c.Tags {
		tags[i] = s.Tag.Render(t)
	}
	tagRow := lipgloss.NewStyle().Width(inner).Render(strings.Join(tags, " "))

	domain := s.Domain(c.Domain).Render(c.Domain)
	details := s.Muted.Render("[Details]")
	if focused {
		details = s.Key.Render("[Details ⏎]")
	}
	gap := inner - lipgloss.Width(domain) - lipgloss.Width(details)
	if gap < 1 {
		gap = 1
	}
	footer := domain + strings.Repeat(" ", gap) + details

	content := lipgloss.JoinVertical(lipgloss.Left, title, short, "", tagRow, "", footer)
	return box.Width(width - box.GetHorizontalBorderSize()).Render(content)
}
