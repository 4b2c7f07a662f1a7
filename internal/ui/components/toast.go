package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/folio/internal/ui/theme"
)

const defaultToastDuration = 3 * time.Second

// toastDismissMsg dismisses the toast. seq guards against an older tick
// hiding a newer toast.
type toastDismissMsg struct{ seq int }

// Toast is an auto-dismiss notification.
type Toast struct {
	Visible  bool
	text     string
	isError  bool
	duration time.Duration
	seq      int
	styles   theme.Styles
}

// NewToast creates a new toast component.
func NewToast(s theme.Styles) Toast {
	return Toast{
		styles:   s,
		duration: defaultToastDuration,
	}
}

// Text returns the current message.
func (m Toast) Text() string { return m.text }

// IsError reports whether the current message is an error.
func (m Toast) IsError() bool { return m.isError }

// Show displays a toast message and returns a Cmd for auto-dismiss.
func (m *Toast) Show(text string, isError bool, duration time.Duration) tea.Cmd {
	m.Visible = true
	m.text = text
	m.isError = isError
	m.seq++
	if duration > 0 {
		m.duration = duration
	} else {
		m.duration = defaultToastDuration
	}
	seq := m.seq
	return tea.Tick(m.duration, func(time.Time) tea.Msg {
		return toastDismissMsg{seq: seq}
	})
}

// Init implements tea.Model.
func (m Toast) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Toast) Update(msg tea.Msg) (Toast, tea.Cmd) {
	switch msg := msg.(type) {
	case toastDismissMsg:
		if msg.seq == m.seq {
			m.Visible = false
			m.text = ""
		}
	}
	return m, nil
}

// View renders the toast notification.
func (m Toast) View() string {
	if !m.Visible || m.text == "" {
		return ""
	}

	fg := m.styles.Success.GetForeground()
	if m.isError {
		fg = m.styles.Error.GetForeground()
	}

	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(m.styles.Tag.GetBackground()).
		Bold(true).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fg)

	return style.Render(m.text)
}
