package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/folio/internal/ui/components"
	"github.com/sadopc/folio/internal/ui/msgs"
	"github.com/sadopc/folio/internal/ui/view"
)

func (a App) cards(f msgs.PanelFocus) []view.Card {
	if f == msgs.FocusFeatured {
		return a.page.Featured
	}
	return a.page.Projects
}

func (a App) currentCard() (view.Card, bool) {
	cards := a.cards(a.focus)
	i := a.cursors[a.focus]
	if i < 0 || i >= len(cards) {
		return view.Card{}, false
	}
	return cards[i], true
}

func (a *App) clampCursors() {
	for _, f := range []msgs.PanelFocus{msgs.FocusFeatured, msgs.FocusProjects} {
		n := len(a.cards(f))
		a.cursors[f] = min(max(a.cursors[f], 0), max(n-1, 0))
	}
}

func (a *App) switchGrid() {
	next := msgs.FocusProjects
	if a.focus == msgs.FocusProjects {
		next = msgs.FocusFeatured
	}
	if len(a.cards(next)) == 0 {
		return
	}
	a.focus = next
	a.renderBody()
	a.ensureVisible()
}

// moveCursor moves within the focused grid. Moving down past the last
// featured row continues into the project grid and back up again.
func (a *App) moveCursor(dx, dy int) {
	cols := max(a.layout.Columns, 1)
	cards := a.cards(a.focus)
	if len(cards) == 0 {
		return
	}
	cur := a.cursors[a.focus]
	i := cur + dx + dy*cols

	switch {
	case dy > 0 && i >= len(cards) && a.focus == msgs.FocusFeatured && len(a.page.Projects) > 0:
		a.focus = msgs.FocusProjects
		a.cursors[a.focus] = min(cur%cols, len(a.page.Projects)-1)
	case dy < 0 && i < 0 && a.focus == msgs.FocusProjects && len(a.page.Featured) > 0:
		a.focus = msgs.FocusFeatured
		n := len(a.page.Featured)
		lastRow := (n - 1) / cols * cols
		a.cursors[a.focus] = min(lastRow+cur%cols, n-1)
	case dy != 0 && (i < 0 || i >= len(cards)):
		// stay on the current card
	default:
		a.cursors[a.focus] = min(max(i, 0), len(cards)-1)
	}

	a.renderBody()
	a.ensureVisible()
}

// ensureVisible scrolls so the row holding the cursor is on screen.
func (a *App) ensureVisible() {
	rows := a.rows[a.focus]
	row := a.cursors[a.focus] / max(a.layout.Columns, 1)
	if row >= len(rows) {
		return
	}
	r := rows[row]
	switch {
	case r.top < a.viewport.YOffset:
		a.viewport.SetYOffset(r.top)
	case r.top+r.height > a.viewport.YOffset+a.viewport.Height:
		a.viewport.SetYOffset(r.top + r.height - a.viewport.Height)
	}
}

func (a *App) jumpTo(s msgs.Section) {
	a.viewport.SetYOffset(a.anchors[s])
}

// renderBody renders the scrollable page and records where each section
// and card row starts.
func (a *App) renderBody() {
	s := a.styles
	w := a.layout.InnerWidth()

	var blocks []string
	line := 0
	add := func(b string) {
		blocks = append(blocks, b)
		line += lipgloss.Height(b)
	}
	addGrid := func(f msgs.PanelFocus, empty string) {
		g := components.Grid{
			Cards:     a.cards(f),
			Columns:   a.layout.Columns,
			CardWidth: a.layout.CardWidth,
			Gutter:    a.layout.Gutter,
			Cursor:    a.cursors[f],
			Focused:   f == a.focus,
		}
		a.rows[f] = nil
		if len(g.Cards) == 0 {
			add(s.Hint.Render(empty))
			return
		}
		for _, row := range g.Rows(s) {
			a.rows[f] = append(a.rows[f], span{top: line, height: lipgloss.Height(row)})
			add(row)
		}
	}

	a.anchors = map[msgs.Section]int{msgs.SectionTop: 0}
	add(components.Hero(a.profile, w, s))

	a.anchors[msgs.SectionProjects] = line
	add(components.SectionHeader("Featured Projects", "", w, s))
	addGrid(msgs.FocusFeatured, "No featured projects")

	add(components.SectionHeader("All Projects", a.filterBar.View(), w, s))
	addGrid(msgs.FocusProjects, "No projects match this filter")

	a.anchors[msgs.SectionAbout] = line
	add(components.About(a.profile, w, s))

	a.anchors[msgs.SectionContact] = line
	add(components.Contact(a.profile, s))
	add("")

	body := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	a.viewport.SetContent(lipgloss.NewStyle().PaddingLeft(a.layout.Padding()).Render(body))
}
