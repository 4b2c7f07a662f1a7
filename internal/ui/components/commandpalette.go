package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/sadopc/folio/internal/core/catalog"
	"github.com/sadopc/folio/internal/core/filter"
	"github.com/sadopc/folio/internal/ui/msgs"
	"github.com/sadopc/folio/internal/ui/theme"
)

// paletteCommand is a command entry in the palette.
type paletteCommand struct {
	Name     string
	Shortcut string
	Msg      tea.Msg
}

var baseCommands = []paletteCommand{
	{Name: "Toggle Theme", Shortcut: "t", Msg: msgs.ToggleThemeMsg{}},
	{Name: "Jump to Projects", Shortcut: "1", Msg: msgs.JumpSectionMsg{Section: msgs.SectionProjects}},
	{Name: "Jump to About", Shortcut: "2", Msg: msgs.JumpSectionMsg{Section: msgs.SectionAbout}},
	{Name: "Jump to Contact", Shortcut: "3", Msg: msgs.JumpSectionMsg{Section: msgs.SectionContact}},
	{Name: "Help", Shortcut: "?", Msg: msgs.ShowHelpMsg{}},
	{Name: "Quit", Shortcut: "Ctrl+C", Msg: tea.QuitMsg{}},
}

// paletteCommands lists the project, filter and base commands.
type paletteCommands []paletteCommand

func (c paletteCommands) String(i int) string { return c[i].Name }
func (c paletteCommands) Len() int            { return len(c) }

// CommandPalette is a fuzzy command palette overlay.
type CommandPalette struct {
	Visible  bool
	input    textinput.Model
	commands paletteCommands
	filtered paletteCommands
	cursor   int
	styles   theme.Styles
}

// NewCommandPalette creates a palette with commands for every project and
// every filter chip of the engine.
func NewCommandPalette(s theme.Styles, e *filter.Engine) CommandPalette {
	ti := textinput.New()
	ti.Placeholder = "Type a project or command..."
	ti.CharLimit = 64
	ti.Width = 54

	cmds := buildCommands(e.Catalog().All(), e.Domains())
	return CommandPalette{
		input:    ti,
		commands: cmds,
		filtered: cmds,
		styles:   s,
	}
}

func buildCommands(projects []catalog.Project, domains []string) paletteCommands {
	var cmds paletteCommands
	for _, p := range projects {
		cmds = append(cmds, paletteCommand{Name: "Open: " + p.Title, Msg: msgs.OpenDetailMsg{ID: p.ID}})
	}
	cmds = append(cmds, paletteCommand{Name: "Filter: " + filter.All, Shortcut: "a", Msg: msgs.SelectFilterMsg{Domain: filter.All}})
	for _, d := range domains {
		cmds = append(cmds, paletteCommand{Name: "Filter: " + d, Msg: msgs.SelectFilterMsg{Domain: d}})
	}
	return append(cmds, baseCommands...)
}

// Open shows the command palette.
func (m *CommandPalette) Open() {
	m.Visible = true
	m.input.SetValue("")
	m.input.Focus()
	m.filtered = m.commands
	m.cursor = 0
}

// Close hides the command palette.
func (m *CommandPalette) Close() {
	m.Visible = false
	m.input.Blur()
}

// Matches returns the names of the currently listed commands.
func (m CommandPalette) Matches() []string {
	names := make([]string, len(m.filtered))
	for i, c := range m.filtered {
		names[i] = c.Name
	}
	return names
}

// Init implements tea.Model.
func (m CommandPalette) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m CommandPalette) Update(msg tea.Msg) (CommandPalette, tea.Cmd) {
	if !m.Visible {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			m.Close()
			return m, func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeBrowse} }
		case "enter":
			if m.cursor < len(m.filtered) {
				selected := m.filtered[m.cursor]
				m.Close()
				return m, tea.Batch(
					func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeBrowse} },
					func() tea.Msg { return selected.Msg },
				)
			}
			return m, nil
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refilter()
	return m, cmd
}

func (m *CommandPalette) refilter() {
	query := m.input.Value()
	if query == "" {
		m.filtered = m.commands
	} else {
		matches := fuzzy.FindFrom(query, m.commands)
		m.filtered = make(paletteCommands, len(matches))
		for i, match := range matches {
			m.filtered[i] = m.commands[match.Index]
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the command palette overlay.
func (m CommandPalette) View() string {
	if !m.Visible {
		return ""
	}

	boxWidth := 60
	inner := boxWidth - 6
	title := m.styles.Title.Width(boxWidth - 4).Align(lipgloss.Center).Render("Command Palette")

	maxItems := min(len(m.filtered), 15)
	items := make([]string, 0, maxItems)
	for i := 0; i < maxItems; i++ {
		c := m.filtered[i]
		name := c.Name
		room := inner
		if c.Shortcut != "" {
			room -= lipgloss.Width(c.Shortcut) + 1
		}
		if lipgloss.Width(name) > room {
			name = truncate(name, room)
		}
		gap := max(inner-lipgloss.Width(name)-lipgloss.Width(c.Shortcut), 1)

		var line string
		if i == m.cursor {
			line = m.styles.Selected.Width(boxWidth - 4).Render(name + strings.Repeat(" ", gap) + c.Shortcut)
		} else {
			line = m.styles.Normal.Render(name) + strings.Repeat(" ", gap) + m.styles.Muted.Render(c.Shortcut)
		}
		items = append(items, line)
	}
	if len(items) == 0 {
		items = append(items, m.styles.Hint.Render("No matches"))
	}

	content := title + "\n\n" + m.input.View() + "\n\n" + strings.Join(items, "\n")
	return m.styles.Overlay.Width(boxWidth).Render(content)
}

func truncate(s string, w int) string {
	r := []rune(s)
	if w < 1 {
		return ""
	}
	if len(r) <= w {
		return s
	}
	return string(r[:w-1]) + "…"
}
