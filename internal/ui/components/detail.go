package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/folio/internal/ui/msgs"
	"github.com/sadopc/folio/internal/ui/theme"
	"github.com/sadopc/folio/internal/ui/view"
)

// DetailOverlay is the blocking dialog that shows one project in full.
// Whether it is shown is decided by the session selection; the overlay only
// renders the detail it is given and turns keys into messages.
type DetailOverlay struct {
	detail *view.Detail
	focus  int // index into actions()
	width  int
	styles theme.Styles
}

// NewDetailOverlay creates a new detail overlay.
func NewDetailOverlay(s theme.Styles) DetailOverlay {
	return DetailOverlay{styles: s}
}

// SetDetail sets the project to show. nil hides the overlay.
func (m *DetailOverlay) SetDetail(d *view.Detail) {
	if d == nil || m.detail == nil || m.detail.ID != d.ID {
		m.focus = 0
	}
	m.detail = d
}

// SetWidth sets the terminal width used to size the box.
func (m *DetailOverlay) SetWidth(w int) {
	m.width = w
}

// Visible reports whether a detail is set.
func (m DetailOverlay) Visible() bool {
	return m.detail != nil
}

// control is a visible action and the key bound to it.
type control struct {
	key string
	view.Action
}

func (m DetailOverlay) actions() []control {
	if m.detail == nil {
		return nil
	}
	var out []control
	for _, c := range []control{{"r", m.detail.Repo}, {"d", m.detail.Demo}} {
		if c.Visible {
			out = append(out, c)
		}
	}
	return out
}

// Init implements tea.Model.
func (m DetailOverlay) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DetailOverlay) Update(msg tea.Msg) (DetailOverlay, tea.Cmd) {
	if m.detail == nil {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "backspace":
			return m, func() tea.Msg { return msgs.CloseDetailMsg{} }
		case "tab", "shift+tab", "left", "right", "h", "l":
			if n := len(m.actions()); n > 0 {
				m.focus = (m.focus + 1) % n
			}
			return m, nil
		case "enter":
			acts := m.actions()
			if m.focus < len(acts) {
				return m, activate(acts[m.focus].Action)
			}
		case "r":
			return m, activate(m.detail.Repo)
		case "d":
			return m, activate(m.detail.Demo)
		}
	}

	return m, nil
}

func activate(a view.Action) tea.Cmd {
	if !a.Visible {
		return func() tea.Msg {
			return msgs.ToastMsg{Text: "No repository link", IsError: true}
		}
	}
	if !a.Enabled {
		return func() tea.Msg {
			return msgs.ToastMsg{Text: a.Label, IsError: true}
		}
	}
	return func() tea.Msg { return msgs.CopyLinkMsg{Label: a.Label, URL: a.URL} }
}

// View renders the detail dialog.
func (m DetailOverlay) View() string {
	if m.detail == nil {
		return ""
	}
	d := m.detail
	s := m.styles

	boxWidth := 72
	if m.width > 0 && m.width-4 < boxWidth {
		boxWidth = max(m.width-4, 30)
	}
	inner := boxWidth - s.Overlay.GetHorizontalFrameSize()

	closeHint := s.Muted.Render("[esc] Close")
	titleWidth := inner - lipgloss.Width(closeHint) - 1
	title := s.Title.Width(titleWidth).Render(d.Title)
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, " ", closeHint)

	var lines []string
	lines = append(lines, header, s.Domain(d.Domain).Render(d.Domain))

	lines = append(lines, s.SectionTitle.Render("Highlights"))
	for _, h := range d.Highlights {
		lines = append(lines, s.Normal.Width(inner).Render("• "+h))
	}

	lines = append(lines, s.SectionTitle.Render("Tech"))
	tags := make([]string, len(d.Tech))
	for i, t := range d.Tech {
		tags[i] = s.Tag.Render(t)
	}
	lines = append(lines, lipgloss.NewStyle().Width(inner).Render(strings.Join(tags, " ")))

	lines = append(lines, "", m.buttons())
	if url := m.focusedURL(); url != "" {
		lines = append(lines, s.URL.Render(url))
	}

	return s.Overlay.Width(boxWidth - s.Overlay.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

func (m DetailOverlay) buttons() string {
	s := m.styles
	var parts []string
	for i, a := range m.actions() {
		var st lipgloss.Style
		switch {
		case !a.Enabled:
			st = s.ButtonDisabled
		case i == m.focus:
			st = s.ButtonPrimary
		default:
			st = s.Button
		}
		label := a.Label
		if a.Enabled {
			label = "[" + a.key + "] " + a.Label
		}
		parts = append(parts, st.Render(label))
	}
	return strings.Join(parts, "  ")
}

func (m DetailOverlay) focusedURL() string {
	acts := m.actions()
	if m.focus < len(acts) && acts[m.focus].Enabled {
		return acts[m.focus].URL
	}
	return ""
}
