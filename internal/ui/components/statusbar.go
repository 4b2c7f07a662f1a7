package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"

	"github.com/sadopc/folio/internal/ui/msgs"
	"github.com/sadopc/folio/internal/ui/theme"
)

// clearStatusMsg clears a temporary status message.
type clearStatusMsg struct{}

// StatusBar is a full-width bottom status bar.
type StatusBar struct {
	visible int
	total   int
	filter  string
	query   string
	theme   string
	mode    msgs.AppMode
	message string
	width   int
	styles  theme.Styles
}

// NewStatusBar creates a new status bar.
func NewStatusBar(s theme.Styles) StatusBar {
	return StatusBar{
		styles: s,
		mode:   msgs.ModeBrowse,
	}
}

// SetCounts sets how many projects are visible out of the catalog total.
func (m *StatusBar) SetCounts(visible, total int) {
	m.visible = visible
	m.total = total
}

// SetFilter sets the active filter and search query.
func (m *StatusBar) SetFilter(filter, query string) {
	m.filter = filter
	m.query = query
}

// SetTheme sets the theme name shown on the right.
func (m *StatusBar) SetTheme(name string) {
	m.theme = name
}

// SetMode sets the current app mode.
func (m *StatusBar) SetMode(mode msgs.AppMode) {
	m.mode = mode
}

// SetWidth sets the available width.
func (m *StatusBar) SetWidth(w int) {
	m.width = w
}

// SetMessage sets a temporary status message.
func (m *StatusBar) SetMessage(text string) {
	m.message = text
}

// Init implements tea.Model.
func (m StatusBar) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	switch msg.(type) {
	case clearStatusMsg:
		m.message = ""
	}
	return m, nil
}

// Summary describes the visible set, e.g. "5 of 7 projects".
func Summary(visible, total int) string {
	if visible == total {
		return english.Plural(total, "project", "")
	}
	return english.Plural(visible, "project", "") + " of " + english.Plural(total, "project", "")
}

// View renders the status bar.
func (m StatusBar) View() string {
	bg := m.styles.StatusBar.GetBackground()
	barStyle := m.styles.StatusBar.Width(m.width).Padding(0)
	seg := func(st lipgloss.Style, text string) string {
		return st.Background(bg).Render(text)
	}

	var leftParts []string
	if m.message != "" {
		leftParts = append(leftParts, seg(m.styles.Normal, m.message))
	} else {
		leftParts = append(leftParts, seg(m.styles.Normal, Summary(m.visible, m.total)))
		if m.filter != "" {
			leftParts = append(leftParts, seg(m.styles.Key, m.filter))
		}
		if m.query != "" {
			leftParts = append(leftParts, seg(m.styles.Subtitle, "/"+m.query))
		}
	}
	left := strings.Join(leftParts, seg(m.styles.Muted, " │ "))

	modeStr := seg(m.styles.Key, "["+m.mode.String()+"]")

	var rightParts []string
	if m.theme != "" {
		rightParts = append(rightParts, seg(m.styles.Subtitle, m.theme))
	}
	rightParts = append(rightParts, seg(m.styles.Muted, "?:help  Ctrl+K:command"))
	hint := strings.Join(rightParts, seg(m.styles.Muted, "  "))

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(modeStr)
	rightWidth := lipgloss.Width(hint)

	totalContent := leftWidth + centerWidth + rightWidth
	if totalContent+2 >= m.width {
		line := " " + left + " " + modeStr + " " + hint
		return barStyle.Render(line)
	}

	remaining := m.width - totalContent - 2
	gap1 := remaining / 2
	gap2 := remaining - gap1

	line := " " + left +
		strings.Repeat(" ", gap1) + modeStr +
		strings.Repeat(" ", gap2) + hint

	return barStyle.Render(line)
}
