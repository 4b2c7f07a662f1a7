package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/folio/internal/ui/msgs"
	"github.com/sadopc/folio/internal/ui/theme"
	"github.com/sadopc/folio/internal/ui/view"
)

// FilterBar is the horizontal row of domain filter chips.
type FilterBar struct {
	chips  []view.Chip
	width  int
	styles theme.Styles
}

// NewFilterBar creates a new filter bar.
func NewFilterBar(s theme.Styles) FilterBar {
	return FilterBar{styles: s}
}

// SetChips sets the chips to render.
func (m *FilterBar) SetChips(chips []view.Chip) {
	m.chips = chips
}

// SetWidth sets the available width.
func (m *FilterBar) SetWidth(w int) {
	m.width = w
}

// Active returns the index of the active chip, or -1.
func (m FilterBar) Active() int {
	for i, c := range m.chips {
		if c.Active {
			return i
		}
	}
	return -1
}

// Step returns the label of the chip delta positions away from the active
// one, wrapping around. With no active chip it starts from the first.
func (m FilterBar) Step(delta int) string {
	if len(m.chips) == 0 {
		return ""
	}
	i := m.Active()
	if i < 0 {
		return m.chips[0].Label
	}
	n := len(m.chips)
	return m.chips[((i+delta)%n+n)%n].Label
}

// Init implements tea.Model.
func (m FilterBar) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m FilterBar) Update(msg tea.Msg) (FilterBar, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("[", "H"))):
			return m, func() tea.Msg { return msgs.PrevFilterMsg{} }
		case key.Matches(msg, key.NewBinding(key.WithKeys("]", "L"))):
			return m, func() tea.Msg { return msgs.NextFilterMsg{} }
		}
	}
	return m, nil
}

// View renders the filter bar.
func (m FilterBar) View() string {
	if len(m.chips) == 0 {
		return ""
	}

	parts := make([]string, len(m.chips))
	for i, c := range m.chips {
		if c.Active {
			parts[i] = m.styles.ChipActive.Render(c.Label)
		} else {
			parts[i] = m.styles.ChipInactive.Render(c.Label)
		}
	}
	row := strings.Join(parts, " ")

	if m.width > 0 && lipgloss.Width(row) > m.width {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(row)
	}
	return row
}
