package app

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/folio/internal/config"
	"github.com/sadopc/folio/internal/core/catalog"
	"github.com/sadopc/folio/internal/core/filter"
	"github.com/sadopc/folio/internal/core/prefs"
	"github.com/sadopc/folio/internal/core/state"
	"github.com/sadopc/folio/internal/ui/components"
	"github.com/sadopc/folio/internal/ui/layout"
	"github.com/sadopc/folio/internal/ui/msgs"
	"github.com/sadopc/folio/internal/ui/theme"
	"github.com/sadopc/folio/internal/ui/view"
)

// Options configures a new App.
type Options struct {
	Catalog *catalog.Catalog // nil uses catalog.Default()
	Profile catalog.Profile
	Config  config.Config
	Prefs   *prefs.Store // nil disables theme persistence
	Theme   state.Theme
	Flag    state.Flag
}

// App is the root Bubble Tea model.
type App struct {
	filterBar      components.FilterBar
	detail         components.DetailOverlay
	statusBar      components.StatusBar
	commandPalette components.CommandPalette
	help           components.Help
	toast          components.Toast
	search         textinput.Model
	viewport       viewport.Model

	store   *state.Store
	engine  *filter.Engine
	prefs   *prefs.Store
	profile catalog.Profile
	cfg     config.Config
	page    view.Page

	mode    msgs.AppMode
	focus   msgs.PanelFocus
	cursors [2]int // per PanelFocus
	anchors map[msgs.Section]int
	rows    [2][]span // rendered card rows per PanelFocus
	layout  layout.PageLayout
	keys    KeyMap

	styles theme.Styles

	width  int
	height int
	ready  bool
}

// span is a vertical range of body lines.
type span struct {
	top    int
	height int
}

// InitialTheme picks the starting theme: a saved choice wins over the
// configured default, and an unparsable default falls back to light.
func InitialTheme(cfg config.Config, p *prefs.Store) state.Theme {
	if p != nil {
		t, ok, err := p.Theme()
		if err != nil {
			log.Printf("prefs: %v", err)
		}
		if ok {
			return t
		}
	}
	t, err := state.ParseTheme(cfg.Theme)
	if err != nil {
		log.Printf("config: %v", err)
		return state.Light
	}
	return t
}

// New creates a new App model.
func New(opts Options) App {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	engine := filter.New(cat)

	pair := theme.ResolvePair(opts.Config.LightPalette, opts.Config.DarkPalette)
	s := theme.NewStyles(pair)

	session := state.NewSession()
	session.Theme = opts.Theme
	store := state.NewStore(session, opts.Flag)

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search projects"
	search.CharLimit = 64

	l := layout.Calculate(80, 24)

	a := App{
		filterBar:      components.NewFilterBar(s),
		detail:         components.NewDetailOverlay(s),
		statusBar:      components.NewStatusBar(s),
		commandPalette: components.NewCommandPalette(s, engine),
		help:           components.NewHelp(s),
		toast:          components.NewToast(s),
		search:         search,
		viewport:       viewport.New(l.Width, l.ContentHeight),

		store:   store,
		engine:  engine,
		prefs:   opts.Prefs,
		profile: opts.Profile,
		cfg:     opts.Config,

		mode:   msgs.ModeBrowse,
		focus:  msgs.FocusFeatured,
		layout: l,
		keys:   DefaultKeyMap(),
		styles: s,
	}
	if len(engine.Featured()) == 0 {
		a.focus = msgs.FocusProjects
	}

	a.resize()
	return a
}

func (a App) Init() tea.Cmd {
	if a.profile.Name == "" {
		return nil
	}
	return tea.SetWindowTitle(a.profile.Name + " · portfolio")
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout = layout.HandleResize(msg)
		a.resize()
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		if a.page.Blocking || a.mode != msgs.ModeBrowse {
			return a, nil
		}
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd

	case msgs.ToggleThemeMsg:
		return a.toggleTheme()

	case msgs.SelectFilterMsg:
		a.selectFilter(msg.Domain)
		return a, nil

	case msgs.NextFilterMsg:
		a.selectFilter(a.filterBar.Step(1))
		return a, nil

	case msgs.PrevFilterMsg:
		a.selectFilter(a.filterBar.Step(-1))
		return a, nil

	case msgs.OpenDetailMsg:
		a.dispatch(state.OpenDetail{ID: msg.ID})
		return a, nil

	case msgs.CloseDetailMsg:
		a.dispatch(state.CloseDetail{})
		return a, nil

	case msgs.CopyLinkMsg:
		return a.copyLink(msg)

	case msgs.JumpSectionMsg:
		a.jumpTo(msg.Section)
		return a, nil

	case msgs.OpenCommandPaletteMsg:
		a.commandPalette.Open()
		a.setMode(msgs.ModeCommandPalette)
		return a, nil

	case msgs.ShowHelpMsg:
		a.help.SetSize(a.width, a.height)
		a.help.Toggle()
		if a.help.Visible {
			a.setMode(msgs.ModeHelp)
		} else {
			a.setMode(msgs.ModeBrowse)
		}
		return a, nil

	case msgs.SetModeMsg:
		a.setMode(msg.Mode)
		return a, nil

	case msgs.ToastMsg:
		cmd := a.toast.Show(msg.Text, msg.IsError, msg.Duration)
		return a, cmd

	case msgs.ThemeSavedMsg:
		if msg.Err != nil {
			log.Printf("saving theme: %v", msg.Err)
			cmd := a.toast.Show("Could not save theme: "+msg.Err.Error(), true, 0)
			return a, cmd
		}
		return a, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.toast, cmd = a.toast.Update(msg)
	cmds = append(cmds, cmd)
	a.statusBar, cmd = a.statusBar.Update(msg)
	cmds = append(cmds, cmd)
	if a.mode == msgs.ModeSearch {
		a.search, cmd = a.search.Update(msg)
		cmds = append(cmds, cmd)
	}
	if a.commandPalette.Visible {
		a.commandPalette, cmd = a.commandPalette.Update(msg)
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

// dispatch applies one session event and re-projects the page.
func (a *App) dispatch(ev state.Event) {
	a.store.Dispatch(ev)
	a.refresh()
}

func (a *App) selectFilter(domain string) {
	if domain == "" {
		return
	}
	a.cursors[msgs.FocusProjects] = 0
	a.dispatch(state.SelectFilter{Domain: domain})
}

func (a *App) setMode(m msgs.AppMode) {
	if a.page.Blocking {
		m = msgs.ModeDetail
	}
	a.mode = m
	a.statusBar.SetMode(m)
}

// refresh rebuilds the page from the session and pushes it into the
// components.
func (a *App) refresh() {
	a.page = view.Build(view.Input{
		Engine:  a.engine,
		Session: a.store.Session(),
		Profile: a.profile,
		Query:   a.search.Value(),
	})

	switch {
	case a.page.Blocking:
		a.mode = msgs.ModeDetail
	case a.mode == msgs.ModeDetail:
		a.mode = msgs.ModeBrowse
	}

	a.filterBar.SetChips(a.page.Filters)
	a.detail.SetDetail(a.page.Detail)

	a.statusBar.SetCounts(len(a.page.Projects), a.engine.Catalog().Len())
	a.statusBar.SetFilter(a.page.Filter, a.search.Value())
	a.statusBar.SetTheme(a.themeLabel())
	a.statusBar.SetMode(a.mode)

	a.clampCursors()
	a.renderBody()
}

func (a App) themeLabel() string {
	name := a.styles.Pair.Light.Name
	if a.page.Theme.IsDark() {
		name = a.styles.Pair.Dark.Name
	}
	return fmt.Sprintf("%s · %s", a.page.Theme, name)
}

func (a *App) resize() {
	a.viewport.Width = a.layout.Width
	a.viewport.Height = a.layout.ContentHeight
	a.filterBar.SetWidth(a.layout.InnerWidth())
	a.detail.SetWidth(a.layout.Width)
	a.statusBar.SetWidth(a.layout.Width)
	a.search.Width = max(a.layout.Width-4, 10)
	a.help.SetSize(a.layout.Width, a.layout.Height)
	a.refresh()
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	nav := lipgloss.NewStyle().
		Padding(0, a.layout.Padding()).
		Render(components.NavBar(a.profile.Name, a.page.Theme, a.layout.InnerWidth(), a.styles))

	bottom := a.statusBar.View()
	if a.mode == msgs.ModeSearch {
		bottom = a.search.View()
	}

	main := lipgloss.JoinVertical(lipgloss.Left, nav, a.viewport.View(), bottom)

	switch {
	case a.page.Blocking:
		main = a.overlayCenter(a.detail.View())
	case a.commandPalette.Visible:
		main = a.overlayCenter(a.commandPalette.View())
	case a.help.Visible:
		main = a.overlayCenter(a.help.View())
	}
	if a.toast.Visible {
		main = overlayTopRight(main, a.toast.View(), a.width)
	}
	return main
}

func (a App) overlayCenter(overlay string) string {
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(a.styles.Backdrop()),
	)
}

func overlayTopRight(bg, overlay string, width int) string {
	gap := max(width-lipgloss.Width(overlay)-2, 0)
	positioned := lipgloss.NewStyle().MarginLeft(gap).Render(overlay)
	return positioned + "\n" + bg
}
