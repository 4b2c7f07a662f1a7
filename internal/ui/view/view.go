// Package view projects catalog and session state into a renderable page.
// Nothing here touches the terminal; components turn a Page into text.
package view

import (
	"github.com/sadopc/folio/internal/core/catalog"
	"github.com/sadopc/folio/internal/core/filter"
	"github.com/sadopc/folio/internal/core/state"
)

// CardTags is how many tech labels a card shows.
const CardTags = 3

// Card is the summary of one project in a grid.
type Card struct {
	ID     string
	Title  string
	Short  string
	Tags   []string
	Domain string
}

// Action is a link control in the detail overlay.
type Action struct {
	Label   string `json:"label"`
	URL     string `json:"url,omitempty"`
	Visible bool   `json:"visible"`
	Enabled bool   `json:"enabled"`
}

// Detail is the full view of the selected project.
type Detail struct {
	ID         string
	Title      string
	Domain     string
	Highlights []string
	Tech       []string
	Repo       Action
	Demo       Action
}

// Chip is one filter control.
type Chip struct {
	Label  string
	Active bool
}

// Page is everything the terminal shows for one session state.
type Page struct {
	Theme    state.Theme
	Filter   string
	Filters  []Chip
	Featured []Card
	Projects []Card
	Detail   *Detail
	Blocking bool
	Profile  catalog.Profile
}

// Input bundles the sources a Page is built from.
type Input struct {
	Engine  *filter.Engine
	Session state.Session
	Profile catalog.Profile
	Query   string
}

// Build derives the page for in. It is recomputed in full after every event.
func Build(in Input) Page {
	s := in.Session
	p := Page{
		Theme:   s.Theme,
		Filter:  s.Filter,
		Profile: in.Profile,
	}

	p.Filters = append(p.Filters, Chip{Label: filter.All, Active: s.Filter == filter.All})
	for _, d := range in.Engine.Domains() {
		p.Filters = append(p.Filters, Chip{Label: d, Active: s.Filter == d})
	}

	p.Featured = Cards(in.Engine.Featured())
	p.Projects = Cards(filter.Search(in.Engine.Apply(s.Filter), in.Query))

	if s.Selection.IsOpen() {
		if proj, ok := in.Engine.Catalog().Get(s.Selection.ProjectID()); ok {
			d := NewDetail(proj)
			p.Detail = &d
			p.Blocking = true
		}
	}
	return p
}

// Cards converts projects to cards, keeping order.
func Cards(projects []catalog.Project) []Card {
	cards := make([]Card, len(projects))
	for i, proj := range projects {
		cards[i] = NewCard(proj)
	}
	return cards
}

// NewCard builds the card for a project.
func NewCard(p catalog.Project) Card {
	tags := p.Tech
	if len(tags) > CardTags {
		tags = tags[:CardTags]
	}
	return Card{
		ID:     p.ID,
		Title:  p.Title,
		Short:  p.Short,
		Tags:   append([]string(nil), tags...),
		Domain: p.Domain,
	}
}

// NewDetail builds the detail view for a project.
func NewDetail(p catalog.Project) Detail {
	d := Detail{
		ID:         p.ID,
		Title:      p.Title,
		Domain:     p.Domain,
		Highlights: append([]string(nil), p.Highlights...),
		Tech:       append([]string(nil), p.Tech...),
	}
	if url, ok := p.RepoURL(); ok {
		d.Repo = Action{Label: "View Code", URL: url, Visible: true, Enabled: true}
	}
	if url, ok := p.DemoURL(); ok {
		d.Demo = Action{Label: "Live Demo", URL: url, Visible: true, Enabled: true}
	} else {
		d.Demo = Action{Label: "Demo Unavailable", Visible: true}
	}
	return d
}
