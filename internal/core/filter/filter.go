package filter

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/sadopc/folio/internal/core/catalog"
)

// All selects every project.
const All = "All"

// Engine derives visible subsets of a catalog.
type Engine struct {
	cat     *catalog.Catalog
	domains []string
}

// New creates an engine over cat. Domains are computed once; the catalog never changes.
func New(cat *catalog.Catalog) *Engine {
	seen := make(map[string]bool)
	var domains []string
	for _, p := range cat.All() {
		if seen[p.Domain] {
			continue
		}
		seen[p.Domain] = true
		domains = append(domains, p.Domain)
	}
	return &Engine{cat: cat, domains: domains}
}

// Catalog returns the underlying catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// Domains returns the distinct domains in first-seen order.
func (e *Engine) Domains() []string {
	return append([]string(nil), e.domains...)
}

// Known reports whether selection is All or one of the catalog domains.
func (e *Engine) Known(selection string) bool {
	if selection == All {
		return true
	}
	for _, d := range e.domains {
		if d == selection {
			return true
		}
	}
	return false
}

// Featured returns the featured projects in catalog order.
func (e *Engine) Featured() []catalog.Project {
	out := []catalog.Project{}
	for _, p := range e.cat.All() {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Apply returns the projects visible under selection. Unknown domains yield
// an empty list.
func (e *Engine) Apply(selection string) []catalog.Project {
	all := e.cat.All()
	if selection == All {
		return all
	}
	out := []catalog.Project{}
	for _, p := range all {
		if p.Domain == selection {
			out = append(out, p)
		}
	}
	return out
}

// Search narrows projects to fuzzy matches of query against title, domain
// and tech labels. Matches keep their input order.
func Search(projects []catalog.Project, query string) []catalog.Project {
	query = strings.TrimSpace(query)
	if query == "" {
		return projects
	}
	matches := fuzzy.FindFrom(query, searchSource(projects))
	hit := make([]bool, len(projects))
	for _, m := range matches {
		hit[m.Index] = true
	}
	out := []catalog.Project{}
	for i, p := range projects {
		if hit[i] {
			out = append(out, p)
		}
	}
	return out
}

type searchSource []catalog.Project

func (s searchSource) String(i int) string {
	p := s[i]
	return p.Title + " " + p.Domain + " " + strings.Join(p.Tech, " ")
}

func (s searchSource) Len() int { return len(s) }
