package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/folio/internal/ui/msgs"
	"github.com/sadopc/folio/internal/ui/theme"
)

type helpSection struct {
	Title    string
	Bindings []helpBinding
}

type helpBinding struct {
	Key  string
	Desc string
}

var helpSections = []helpSection{
	{
		Title: "General",
		Bindings: []helpBinding{
			{"Ctrl+C", "Quit application"},
			{"q", "Quit (close detail when open)"},
			{"Ctrl+K", "Open command palette"},
			{"?", "Toggle this help"},
			{"t", "Toggle light / dark theme"},
			{"1 / 2 / 3", "Jump to projects / about / contact"},
			{"PgUp / PgDn", "Scroll the page"},
		},
	},
	{
		Title: "Projects",
		Bindings: []helpBinding{
			{"[ / ]", "Previous / next filter"},
			{"H / L", "Previous / next filter"},
			{"a", "Show all projects"},
			{"Tab", "Switch between featured and all projects"},
			{"h j k l", "Move between cards"},
			{"Enter", "Open project details"},
			{"/", "Search visible projects"},
		},
	},
	{
		Title: "Details",
		Bindings: []helpBinding{
			{"Esc / q", "Close details"},
			{"Tab", "Cycle buttons"},
			{"Enter", "Copy the focused link"},
			{"r", "Copy repository link"},
			{"d", "Copy demo link"},
		},
	},
}

// Help is a help overlay showing keybindings.
type Help struct {
	Visible  bool
	viewport viewport.Model
	styles   theme.Styles
	width    int
	height   int
	ready    bool
}

// NewHelp creates a new help overlay.
func NewHelp(s theme.Styles) Help {
	return Help{styles: s}
}

// SetSize sets the terminal dimensions for centering.
func (m *Help) SetSize(w, h int) {
	m.width = w
	m.height = h
	if m.Visible {
		m.buildViewport()
	}
}

// Toggle toggles help visibility.
func (m *Help) Toggle() {
	m.Visible = !m.Visible
	if m.Visible {
		m.buildViewport()
	}
}

func (m *Help) buildViewport() {
	contentWidth := 64

	keyStyle := m.styles.Key.Width(16).Align(lipgloss.Right)
	sectionStyle := m.styles.SectionTitle
	sepStyle := m.styles.Muted

	var lines []string
	for _, section := range helpSections {
		lines = append(lines, sectionStyle.Render(section.Title))
		lines = append(lines, sepStyle.Render(strings.Repeat("─", contentWidth)))
		for _, b := range section.Bindings {
			lines = append(lines, keyStyle.Render(b.Key)+sepStyle.Render(" │ ")+m.styles.Normal.Render(b.Desc))
		}
	}

	vpHeight := m.height - 8
	if vpHeight < 10 {
		vpHeight = 10
	}

	m.viewport = viewport.New(contentWidth, vpHeight)
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.ready = true
}

// Init implements tea.Model.
func (m Help) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Help) Update(msg tea.Msg) (Help, tea.Cmd) {
	if !m.Visible {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "?", "q":
			m.Visible = false
			return m, func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeBrowse} }
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the help overlay.
func (m Help) View() string {
	if !m.Visible {
		return ""
	}
	if !m.ready {
		m.buildViewport()
	}

	title := m.styles.Title.Width(64).Align(lipgloss.Center).Render("Keyboard Shortcuts")
	return m.styles.Overlay.Width(70).Render(title + "\n\n" + m.viewport.View())
}
