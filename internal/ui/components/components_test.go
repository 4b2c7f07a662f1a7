package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/folio/internal/core/catalog"
	"github.com/sadopc/folio/internal/core/filter"
	"github.com/sadopc/folio/internal/core/state"
	"github.com/sadopc/folio/internal/ui/msgs"
	"github.com/sadopc/folio/internal/ui/theme"
	"github.com/sadopc/folio/internal/ui/view"
)

// helpers

func testStyles() theme.Styles {
	return theme.NewStyles(theme.DefaultPair())
}

func testEngine() *filter.Engine {
	return filter.New(catalog.Default())
}

func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func specialKeyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	return cmd()
}

func testDetail(demo bool) *view.Detail {
	d := view.Detail{
		ID:         "p1",
		Title:      "Project One",
		Domain:     "Web",
		Highlights: []string{"Fast"},
		Tech:       []string{"Go", "SQLite"},
		Repo:       view.Action{Label: "View Code", URL: "https://example.com/repo", Visible: true, Enabled: true},
		Demo:       view.Action{Label: "Demo Unavailable", Visible: true},
	}
	if demo {
		d.Demo = view.Action{Label: "Live Demo", URL: "https://example.com/demo", Visible: true, Enabled: true}
	}
	return &d
}

// ─────────────────────────────────────────────────────────────────────────────
// Grid tests
// ─────────────────────────────────────────────────────────────────────────────

func TestGrid_EmptyShowsHint(t *testing.T) {
	g := Grid{Columns: 2, CardWidth: 30}
	out := g.View(testStyles(), "No projects in this domain")
	if !strings.Contains(out, "No projects in this domain") {
		t.Fatalf("expected empty hint, got %q", out)
	}
}

func TestGrid_RendersEveryCard(t *testing.T) {
	g := Grid{
		Cards: []view.Card{
			{ID: "a", Title: "Alpha", Domain: "Web", Tags: []string{"Go"}},
			{ID: "b", Title: "Beta", Domain: "AI/ML"},
			{ID: "c", Title: "Gamma", Domain: "Web"},
		},
		Columns:   2,
		CardWidth: 30,
		Gutter:    1,
		Cursor:    -1,
	}
	out := g.View(testStyles(), "")
	for _, want := range []string{"Alpha", "Beta", "Gamma", "Go", "[Details]"} {
		if !strings.Contains(out, want) {
			t.Errorf("grid missing %q", want)
		}
	}
}

func TestRenderCard_FocusedShowsEnterHint(t *testing.T) {
	c := view.Card{ID: "a", Title: "Alpha", Domain: "Web"}
	if out := RenderCard(c, 30, true, testStyles()); !strings.Contains(out, "Details ⏎") {
		t.Fatalf("focused card should show enter hint, got %q", out)
	}
	if out := RenderCard(c, 30, false, testStyles()); strings.Contains(out, "⏎") {
		t.Fatal("unfocused card should not show enter hint")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// FilterBar tests
// ─────────────────────────────────────────────────────────────────────────────

func chips(active string) []view.Chip {
	labels := []string{filter.All, "Blockchain", "AI/ML", "Web"}
	out := make([]view.Chip, len(labels))
	for i, l := range labels {
		out[i] = view.Chip{Label: l, Active: l == active}
	}
	return out
}

func TestFilterBar_Step(t *testing.T) {
	tests := []struct {
		active string
		delta  int
		want   string
	}{
		{filter.All, 1, "Blockchain"},
		{filter.All, -1, "Web"},
		{"Web", 1, filter.All},
		{"AI/ML", -1, "Blockchain"},
		{"Unknown", 1, filter.All},
	}
	for _, tt := range tests {
		fb := NewFilterBar(testStyles())
		fb.SetChips(chips(tt.active))
		if got := fb.Step(tt.delta); got != tt.want {
			t.Errorf("Step(%d) from %q = %q, want %q", tt.delta, tt.active, got, tt.want)
		}
	}
}

func TestFilterBar_StepWithoutChips(t *testing.T) {
	fb := NewFilterBar(testStyles())
	if got := fb.Step(1); got != "" {
		t.Fatalf("expected empty label, got %q", got)
	}
}

func TestFilterBar_KeysEmitStepMessages(t *testing.T) {
	fb := NewFilterBar(testStyles())
	_, cmd := fb.Update(keyMsg("]"))
	if _, ok := runCmd(t, cmd).(msgs.NextFilterMsg); !ok {
		t.Fatal("] should emit NextFilterMsg")
	}
	_, cmd = fb.Update(keyMsg("["))
	if _, ok := runCmd(t, cmd).(msgs.PrevFilterMsg); !ok {
		t.Fatal("[ should emit PrevFilterMsg")
	}
}

func TestFilterBar_ViewListsChips(t *testing.T) {
	fb := NewFilterBar(testStyles())
	fb.SetChips(chips("Web"))
	out := fb.View()
	for _, want := range []string{"All", "Blockchain", "AI/ML", "Web"} {
		if !strings.Contains(out, want) {
			t.Errorf("filter bar missing %q", want)
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// DetailOverlay tests
// ─────────────────────────────────────────────────────────────────────────────

func TestDetailOverlay_HiddenWithoutDetail(t *testing.T) {
	d := NewDetailOverlay(testStyles())
	if d.Visible() {
		t.Fatal("overlay should start hidden")
	}
	if d.View() != "" {
		t.Fatal("hidden overlay should render nothing")
	}
	if _, cmd := d.Update(specialKeyMsg(tea.KeyEsc)); cmd != nil {
		t.Fatal("hidden overlay should ignore keys")
	}
}

func TestDetailOverlay_CloseKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{specialKeyMsg(tea.KeyEsc), keyMsg("q")} {
		d := NewDetailOverlay(testStyles())
		d.SetDetail(testDetail(false))
		_, cmd := d.Update(k)
		if _, ok := runCmd(t, cmd).(msgs.CloseDetailMsg); !ok {
			t.Errorf("%q should emit CloseDetailMsg", k.String())
		}
	}
}

func TestDetailOverlay_RepoCopies(t *testing.T) {
	d := NewDetailOverlay(testStyles())
	d.SetDetail(testDetail(false))
	_, cmd := d.Update(keyMsg("r"))
	msg, ok := runCmd(t, cmd).(msgs.CopyLinkMsg)
	if !ok {
		t.Fatal("r should emit CopyLinkMsg")
	}
	if msg.URL != "https://example.com/repo" {
		t.Fatalf("unexpected url %q", msg.URL)
	}
}

func TestDetailOverlay_DisabledDemoToastsError(t *testing.T) {
	d := NewDetailOverlay(testStyles())
	d.SetDetail(testDetail(false))
	_, cmd := d.Update(keyMsg("d"))
	msg, ok := runCmd(t, cmd).(msgs.ToastMsg)
	if !ok {
		t.Fatal("d on a disabled demo should emit ToastMsg")
	}
	if !msg.IsError || msg.Text != "Demo Unavailable" {
		t.Fatalf("unexpected toast %+v", msg)
	}
}

func TestDetailOverlay_TabCyclesFocus(t *testing.T) {
	d := NewDetailOverlay(testStyles())
	d.SetDetail(testDetail(true))
	d, _ = d.Update(specialKeyMsg(tea.KeyTab))
	_, cmd := d.Update(specialKeyMsg(tea.KeyEnter))
	msg, ok := runCmd(t, cmd).(msgs.CopyLinkMsg)
	if !ok || msg.Label != "Live Demo" {
		t.Fatalf("enter after tab should copy the demo link, got %+v", msg)
	}
}

func TestDetailOverlay_FocusResetsOnNewProject(t *testing.T) {
	d := NewDetailOverlay(testStyles())
	d.SetDetail(testDetail(true))
	d, _ = d.Update(specialKeyMsg(tea.KeyTab))
	other := testDetail(true)
	other.ID = "p2"
	d.SetDetail(other)
	_, cmd := d.Update(specialKeyMsg(tea.KeyEnter))
	if msg, ok := runCmd(t, cmd).(msgs.CopyLinkMsg); !ok || msg.Label != "View Code" {
		t.Fatalf("focus should reset to the first control, got %+v", msg)
	}
}

func TestDetailOverlay_View(t *testing.T) {
	d := NewDetailOverlay(testStyles())
	d.SetDetail(testDetail(false))
	out := d.View()
	for _, want := range []string{"Project One", "Highlights", "Fast", "Go", "SQLite", "View Code", "Demo Unavailable", "[esc] Close"} {
		if !strings.Contains(out, want) {
			t.Errorf("overlay missing %q", want)
		}
	}
}

func TestDetailOverlay_NoRepoHidesButton(t *testing.T) {
	det := testDetail(false)
	det.Repo = view.Action{}
	d := NewDetailOverlay(testStyles())
	d.SetDetail(det)
	if strings.Contains(d.View(), "View Code") {
		t.Fatal("absent repo should not render a button")
	}
	_, cmd := d.Update(keyMsg("r"))
	if msg, ok := runCmd(t, cmd).(msgs.ToastMsg); !ok || !msg.IsError {
		t.Fatal("r without a repo should toast an error")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Page section tests
// ─────────────────────────────────────────────────────────────────────────────

func TestNavBar_ToggleLabel(t *testing.T) {
	s := testStyles()
	light := NavBar("Ruhi", state.Light, 100, s)
	if !strings.Contains(light, "Dark") {
		t.Errorf("light theme should offer Dark, got %q", light)
	}
	dark := NavBar("Ruhi", state.Dark, 100, s)
	if !strings.Contains(dark, "Light") {
		t.Errorf("dark theme should offer Light, got %q", dark)
	}
	for _, want := range []string{"Ruhi", "Projects", "About", "Contact"} {
		if !strings.Contains(light, want) {
			t.Errorf("nav bar missing %q", want)
		}
	}
}

func TestSections(t *testing.T) {
	p := catalog.Profile{Name: "Ruhi", Tagline: "Builder", About: "Likes code", Email: "r@example.com"}
	s := testStyles()
	if out := Hero(p, 80, s); !strings.Contains(out, "Ruhi") {
		t.Errorf("hero missing name: %q", out)
	}
	if out := About(p, 80, s); !strings.Contains(out, "Likes code") {
		t.Errorf("about missing body: %q", out)
	}
	if out := Contact(p, s); !strings.Contains(out, "r@example.com") {
		t.Errorf("contact missing email: %q", out)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// StatusBar tests
// ─────────────────────────────────────────────────────────────────────────────

func TestSummary(t *testing.T) {
	tests := []struct {
		visible, total int
		want           string
	}{
		{7, 7, "7 projects"},
		{1, 1, "1 project"},
		{2, 7, "2 projects of 7 projects"},
		{0, 7, "0 projects of 7 projects"},
	}
	for _, tt := range tests {
		if got := Summary(tt.visible, tt.total); got != tt.want {
			t.Errorf("Summary(%d, %d) = %q, want %q", tt.visible, tt.total, got, tt.want)
		}
	}
}

func TestStatusBar_NewDefault(t *testing.T) {
	sb := NewStatusBar(testStyles())
	if sb.mode != msgs.ModeBrowse {
		t.Fatalf("expected browse mode, got %v", sb.mode)
	}
}

func TestStatusBar_View(t *testing.T) {
	sb := NewStatusBar(testStyles())
	sb.SetWidth(120)
	sb.SetCounts(2, 7)
	sb.SetFilter("Web", "react")
	sb.SetMode(msgs.ModeSearch)
	out := sb.View()
	for _, want := range []string{"2 projects of 7", "Web", "/react", "[SEARCH]", "?:help"} {
		if !strings.Contains(out, want) {
			t.Errorf("status bar missing %q in %q", want, out)
		}
	}
}

func TestStatusBar_MessageReplacesSummary(t *testing.T) {
	sb := NewStatusBar(testStyles())
	sb.SetWidth(120)
	sb.SetCounts(7, 7)
	sb.SetMessage("Copied")
	if out := sb.View(); !strings.Contains(out, "Copied") || strings.Contains(out, "7 projects") {
		t.Fatalf("message should replace summary, got %q", out)
	}
	sb, _ = sb.Update(clearStatusMsg{})
	if sb.message != "" {
		t.Fatal("clearStatusMsg should clear the message")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Toast tests
// ─────────────────────────────────────────────────────────────────────────────

func TestToast_NewDefault(t *testing.T) {
	toast := NewToast(testStyles())
	if toast.Visible {
		t.Fatal("toast should start hidden")
	}
}

func TestToast_Show(t *testing.T) {
	toast := NewToast(testStyles())
	cmd := toast.Show("Copied!", false, 2*time.Second)
	if !toast.Visible || toast.Text() != "Copied!" || toast.IsError() {
		t.Fatalf("unexpected toast state %+v", toast)
	}
	if toast.duration != 2*time.Second {
		t.Fatalf("expected duration 2s, got %v", toast.duration)
	}
	if cmd == nil {
		t.Fatal("Show should return a tick cmd for auto-dismiss")
	}
}

func TestToast_ZeroDurationDefaults(t *testing.T) {
	toast := NewToast(testStyles())
	toast.Show("Failed!", true, 0)
	if !toast.IsError() {
		t.Fatal("toast should be in error state")
	}
	if toast.duration != 3*time.Second {
		t.Fatalf("expected default 3s duration, got %v", toast.duration)
	}
}

func TestToast_StaleDismissIgnored(t *testing.T) {
	toast := NewToast(testStyles())
	toast.Show("first", false, time.Second)
	toast.Show("second", false, time.Second)

	toast, _ = toast.Update(toastDismissMsg{seq: 1})
	if !toast.Visible || toast.Text() != "second" {
		t.Fatal("an older dismiss should not hide a newer toast")
	}
	toast, _ = toast.Update(toastDismissMsg{seq: 2})
	if toast.Visible || toast.View() != "" {
		t.Fatal("toast should be hidden after its own dismiss")
	}
}

func TestToast_View(t *testing.T) {
	toast := NewToast(testStyles())
	toast.Show("Copied!", false, 0)
	if !strings.Contains(toast.View(), "Copied!") {
		t.Fatal("toast view should contain the message")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// CommandPalette tests
// ─────────────────────────────────────────────────────────────────────────────

func TestCommandPalette_ListsProjectsAndFilters(t *testing.T) {
	p := NewCommandPalette(testStyles(), testEngine())
	names := p.Matches()
	if names[0] != "Open: Decentralized Finance (DeFi) Application" {
		t.Fatalf("first command should open the first project, got %q", names[0])
	}
	for _, want := range []string{"Filter: All", "Filter: Blockchain", "Filter: AI/ML", "Filter: Web", "Toggle Theme", "Quit"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("palette missing %q", want)
		}
	}
}

func TestCommandPalette_OpenClose(t *testing.T) {
	p := NewCommandPalette(testStyles(), testEngine())
	p.Open()
	if !p.Visible {
		t.Fatal("palette should be visible after Open")
	}
	p, cmd := p.Update(specialKeyMsg(tea.KeyEsc))
	if p.Visible {
		t.Fatal("esc should close the palette")
	}
	if m, ok := runCmd(t, cmd).(msgs.SetModeMsg); !ok || m.Mode != msgs.ModeBrowse {
		t.Fatal("esc should return to browse mode")
	}
}

func TestCommandPalette_EnterOpensProject(t *testing.T) {
	p := NewCommandPalette(testStyles(), testEngine())
	p.Open()
	p, _ = p.Update(specialKeyMsg(tea.KeyDown))
	p, cmd := p.Update(specialKeyMsg(tea.KeyEnter))
	if p.Visible {
		t.Fatal("enter should close the palette")
	}
	batch, ok := runCmd(t, cmd).(tea.BatchMsg)
	if !ok {
		t.Fatal("enter should return a batch")
	}
	var opened string
	for _, c := range batch {
		if m, ok := c().(msgs.OpenDetailMsg); ok {
			opened = m.ID
		}
	}
	if opened != "plant-disease" {
		t.Fatalf("expected plant-disease, got %q", opened)
	}
}

func TestCommandPalette_FuzzyFilters(t *testing.T) {
	p := NewCommandPalette(testStyles(), testEngine())
	p.Open()
	for _, r := range "contact" {
		p, _ = p.Update(keyMsg(string(r)))
	}
	names := p.Matches()
	if len(names) == 0 {
		t.Fatal("expected matches for 'contact'")
	}
	found := false
	for _, n := range names {
		if n == "Jump to Contact" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Jump to Contact among %v", names)
	}
}

func TestCommandPalette_CursorBounds(t *testing.T) {
	p := NewCommandPalette(testStyles(), testEngine())
	p.Open()
	p, _ = p.Update(specialKeyMsg(tea.KeyUp))
	if p.cursor != 0 {
		t.Fatalf("cursor should stay at 0, got %d", p.cursor)
	}
	for i := 0; i < len(p.commands)+5; i++ {
		p, _ = p.Update(specialKeyMsg(tea.KeyDown))
	}
	if p.cursor != len(p.commands)-1 {
		t.Fatalf("cursor should stop at the last item, got %d", p.cursor)
	}
}

func TestCommandPalette_IgnoresInputWhenHidden(t *testing.T) {
	p := NewCommandPalette(testStyles(), testEngine())
	if _, cmd := p.Update(specialKeyMsg(tea.KeyEnter)); cmd != nil {
		t.Fatal("hidden palette should ignore input")
	}
	if p.View() != "" {
		t.Fatal("hidden palette should render nothing")
	}
}

func TestCommandPalette_View(t *testing.T) {
	p := NewCommandPalette(testStyles(), testEngine())
	p.Open()
	if out := p.View(); !strings.Contains(out, "Command Palette") {
		t.Fatalf("palette view missing title: %q", out)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 4); got != "abc…" {
		t.Fatalf("got %q", got)
	}
	if got := truncate("abc", 4); got != "abc" {
		t.Fatalf("got %q", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Help tests
// ─────────────────────────────────────────────────────────────────────────────

func TestHelp_Toggle(t *testing.T) {
	h := NewHelp(testStyles())
	if h.Visible {
		t.Fatal("help should start hidden")
	}
	h.Toggle()
	if !h.Visible || !h.ready {
		t.Fatal("help should be visible and built after Toggle")
	}
	h.Toggle()
	if h.Visible {
		t.Fatal("second Toggle should hide help")
	}
}

func TestHelp_CloseKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{specialKeyMsg(tea.KeyEsc), keyMsg("?")} {
		h := NewHelp(testStyles())
		h.SetSize(100, 40)
		h.Toggle()
		h, cmd := h.Update(k)
		if h.Visible {
			t.Errorf("%q should close help", k.String())
		}
		if m, ok := runCmd(t, cmd).(msgs.SetModeMsg); !ok || m.Mode != msgs.ModeBrowse {
			t.Errorf("%q should return to browse mode", k.String())
		}
	}
}

func TestHelp_View(t *testing.T) {
	h := NewHelp(testStyles())
	if h.View() != "" {
		t.Fatal("hidden help should render nothing")
	}
	h.SetSize(100, 60)
	h.Toggle()
	out := h.View()
	for _, want := range []string{"Keyboard Shortcuts", "General", "Toggle light / dark theme"} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q", want)
		}
	}
}

func TestGrid_RowsFollowColumns(t *testing.T) {
	g := Grid{
		Cards:     []view.Card{{Title: "A"}, {Title: "B"}, {Title: "C"}},
		Columns:   2,
		CardWidth: 30,
	}
	if n := len(g.Rows(testStyles())); n != 2 {
		t.Fatalf("expected 2 rows, got %d", n)
	}
	g.Columns = 0
	if n := len(g.Rows(testStyles())); n != 3 {
		t.Fatalf("zero columns should fall back to one per row, got %d", n)
	}
}
