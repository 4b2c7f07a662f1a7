package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyID     = errors.New("project id is empty")
	ErrDuplicateID = errors.New("duplicate project id")
	ErrEmptyDomain = errors.New("project domain is empty")
)

// Project is a single portfolio entry.
type Project struct {
	ID         string   `yaml:"id" json:"id"`
	Title      string   `yaml:"title" json:"title"`
	Domain     string   `yaml:"domain" json:"domain"`
	Featured   bool     `yaml:"featured,omitempty" json:"featured,omitempty"`
	Short      string   `yaml:"short" json:"short"`
	Tech       []string `yaml:"tech,omitempty" json:"tech,omitempty"`
	Highlights []string `yaml:"highlights,omitempty" json:"highlights,omitempty"`
	Repo       *string  `yaml:"repo,omitempty" json:"repo,omitempty"`
	Demo       *string  `yaml:"demo,omitempty" json:"demo,omitempty"`
}

// RepoURL returns the repository link and whether one is set.
func (p Project) RepoURL() (string, bool) {
	return deref(p.Repo)
}

// DemoURL returns the live demo link and whether one is set.
func (p Project) DemoURL() (string, bool) {
	return deref(p.Demo)
}

func deref(s *string) (string, bool) {
	if s == nil || *s == "" {
		return "", false
	}
	return *s, true
}

// Link returns a pointer to s, for filling the optional link fields.
func Link(s string) *string {
	return &s
}

// Catalog is an immutable, ordered list of projects.
type Catalog struct {
	projects []Project
	index    map[string]int
}

// New builds a catalog, preserving the order of projects.
func New(projects []Project) (*Catalog, error) {
	c := &Catalog{
		projects: make([]Project, 0, len(projects)),
		index:    make(map[string]int, len(projects)),
	}
	for i, p := range projects {
		if p.ID == "" {
			return nil, fmt.Errorf("project #%d: %w", i, ErrEmptyID)
		}
		if _, ok := c.index[p.ID]; ok {
			return nil, fmt.Errorf("project %q: %w", p.ID, ErrDuplicateID)
		}
		if p.Domain == "" {
			return nil, fmt.Errorf("project %q: %w", p.ID, ErrEmptyDomain)
		}
		c.index[p.ID] = len(c.projects)
		c.projects = append(c.projects, clone(p))
	}
	return c, nil
}

// MustNew is like New but panics on invalid data. Use it for compiled-in catalogs.
func MustNew(projects []Project) *Catalog {
	c, err := New(projects)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// All returns every project in catalog order.
func (c *Catalog) All() []Project {
	out := make([]Project, len(c.projects))
	for i, p := range c.projects {
		out[i] = clone(p)
	}
	return out
}

// Len returns the number of projects.
func (c *Catalog) Len() int {
	return len(c.projects)
}

// Get looks up a project by id.
func (c *Catalog) Get(id string) (Project, bool) {
	i, ok := c.index[id]
	if !ok {
		return Project{}, false
	}
	return clone(c.projects[i]), true
}

func clone(p Project) Project {
	p.Tech = append([]string(nil), p.Tech...)
	p.Highlights = append([]string(nil), p.Highlights...)
	if p.Repo != nil {
		p.Repo = Link(*p.Repo)
	}
	if p.Demo != nil {
		p.Demo = Link(*p.Demo)
	}
	return p
}
