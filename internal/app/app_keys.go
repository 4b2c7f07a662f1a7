package app

import (
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/folio/internal/core/filter"
	"github.com/sadopc/folio/internal/core/state"
	"github.com/sadopc/folio/internal/ui/msgs"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}

	// The detail overlay blocks the page: only its own keys get through.
	if a.page.Blocking {
		var cmd tea.Cmd
		a.detail, cmd = a.detail.Update(msg)
		return a, cmd
	}
	if a.commandPalette.Visible {
		var cmd tea.Cmd
		a.commandPalette, cmd = a.commandPalette.Update(msg)
		return a, cmd
	}
	if a.help.Visible {
		var cmd tea.Cmd
		a.help, cmd = a.help.Update(msg)
		return a, cmd
	}
	if a.mode == msgs.ModeSearch {
		return a.updateSearch(msg)
	}
	return a.handleBrowseKey(msg)
}

func (a App) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.QuitSoft):
		return a, tea.Quit
	case key.Matches(msg, a.keys.ToggleTheme):
		return a.toggleTheme()
	case key.Matches(msg, a.keys.CommandPalette):
		return a, func() tea.Msg { return msgs.OpenCommandPaletteMsg{} }
	case key.Matches(msg, a.keys.Help):
		return a, func() tea.Msg { return msgs.ShowHelpMsg{} }

	case key.Matches(msg, a.keys.PrevFilter, a.keys.NextFilter):
		var cmd tea.Cmd
		a.filterBar, cmd = a.filterBar.Update(msg)
		return a, cmd
	case key.Matches(msg, a.keys.AllFilter):
		a.selectFilter(filter.All)
		return a, nil
	case key.Matches(msg, a.keys.Search):
		a.setMode(msgs.ModeSearch)
		a.focus = msgs.FocusProjects
		a.renderBody()
		a.jumpTo(msgs.SectionProjects)
		cmd := a.search.Focus()
		return a, tea.Batch(cmd, textinput.Blink)

	case key.Matches(msg, a.keys.SwitchGrid):
		a.switchGrid()
		return a, nil
	case key.Matches(msg, a.keys.Up):
		a.moveCursor(0, -1)
		return a, nil
	case key.Matches(msg, a.keys.Down):
		a.moveCursor(0, 1)
		return a, nil
	case key.Matches(msg, a.keys.Left):
		a.moveCursor(-1, 0)
		return a, nil
	case key.Matches(msg, a.keys.Right):
		a.moveCursor(1, 0)
		return a, nil
	case key.Matches(msg, a.keys.Open):
		if c, ok := a.currentCard(); ok {
			a.dispatch(state.OpenDetail{ID: c.ID})
		}
		return a, nil

	case key.Matches(msg, a.keys.JumpProjects):
		a.jumpTo(msgs.SectionProjects)
		return a, nil
	case key.Matches(msg, a.keys.JumpAbout):
		a.jumpTo(msgs.SectionAbout)
		return a, nil
	case key.Matches(msg, a.keys.JumpContact):
		a.jumpTo(msgs.SectionContact)
		return a, nil
	case key.Matches(msg, a.keys.PageUp):
		a.viewport.SetYOffset(a.viewport.YOffset - a.viewport.Height)
		return a, nil
	case key.Matches(msg, a.keys.PageDown):
		a.viewport.SetYOffset(a.viewport.YOffset + a.viewport.Height)
		return a, nil
	case key.Matches(msg, a.keys.Top):
		a.viewport.GotoTop()
		return a, nil
	case key.Matches(msg, a.keys.Bottom):
		a.viewport.GotoBottom()
		return a, nil
	}
	return a, nil
}

// updateSearch edits the search query. Enter keeps the query, esc clears it.
func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.search.Blur()
		a.setMode(msgs.ModeBrowse)
		a.refresh()
		return a, nil
	case "esc":
		a.search.Blur()
		a.search.SetValue("")
		a.setMode(msgs.ModeBrowse)
		a.refresh()
		return a, nil
	}

	prev := a.search.Value()
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	if a.search.Value() != prev {
		a.cursors[msgs.FocusProjects] = 0
		a.refresh()
	}
	return a, cmd
}

func (a App) toggleTheme() (tea.Model, tea.Cmd) {
	a.dispatch(state.ToggleTheme{})
	t := a.store.Session().Theme
	cmds := []tea.Cmd{a.toast.Show("Theme: "+t.String(), false, 2*time.Second)}
	if save := a.saveTheme(t); save != nil {
		cmds = append(cmds, save)
	}
	return a, tea.Batch(cmds...)
}

// saveTheme returns a command persisting t, or nil when persistence is off.
func (a App) saveTheme(t state.Theme) tea.Cmd {
	if a.prefs == nil || !a.cfg.PersistTheme {
		return nil
	}
	p := a.prefs
	return func() tea.Msg {
		return msgs.ThemeSavedMsg{Err: p.SetTheme(t)}
	}
}

func (a App) copyLink(msg msgs.CopyLinkMsg) (tea.Model, tea.Cmd) {
	if err := writeClipboard(msg.URL); err != nil {
		log.Printf("clipboard: %v", err)
		cmd := a.toast.Show("Clipboard error: "+err.Error(), true, 3*time.Second)
		return a, cmd
	}
	cmd := a.toast.Show("Copied "+msg.Label+" link: "+msg.URL, false, 2*time.Second)
	return a, cmd
}
