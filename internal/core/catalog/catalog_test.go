package catalog

import (
	"errors"
	"testing"
)

func TestNew_PreservesOrder(t *testing.T) {
	c, err := New([]Project{
		{ID: "a", Domain: "X"},
		{ID: "b", Domain: "Y"},
		{ID: "c", Domain: "X"},
	})
	if err != nil {
		t.Fatal(err)
	}
	all := c.All()
	if len(all) != 3 || c.Len() != 3 {
		t.Fatalf("expected 3 projects, got %d", len(all))
	}
	for i, want := range []string{"a", "b", "c"} {
		if all[i].ID != want {
			t.Errorf("position %d: got %q, want %q", i, all[i].ID, want)
		}
	}
}

func TestNew_RejectsInvalidProjects(t *testing.T) {
	tests := []struct {
		name     string
		projects []Project
		want     error
	}{
		{"duplicate id", []Project{{ID: "a", Domain: "X"}, {ID: "a", Domain: "Y"}}, ErrDuplicateID},
		{"empty id", []Project{{Domain: "X"}}, ErrEmptyID},
		{"empty domain", []Project{{ID: "a"}}, ErrEmptyDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.projects)
			if !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMustNew_PanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for duplicate id")
		}
	}()
	MustNew([]Project{{ID: "a", Domain: "X"}, {ID: "a", Domain: "X"}})
}

func TestAll_ReturnsCopy(t *testing.T) {
	c := MustNew([]Project{{ID: "a", Domain: "X", Tech: []string{"Go"}, Repo: Link("https://example.com")}})

	all := c.All()
	all[0].Title = "changed"
	all[0].Tech[0] = "Rust"
	*all[0].Repo = "mutated"

	p, _ := c.Get("a")
	if p.Title != "" || p.Tech[0] != "Go" {
		t.Fatalf("catalog was mutated through All(): %+v", p)
	}
	if url, _ := p.RepoURL(); url != "https://example.com" {
		t.Fatalf("repo link was mutated: %q", url)
	}
}

func TestGet(t *testing.T) {
	c := MustNew([]Project{{ID: "a", Domain: "X", Title: "Alpha"}})

	p, ok := c.Get("a")
	if !ok || p.Title != "Alpha" {
		t.Fatalf("Get(a) = %+v, %v", p, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected Get(missing) to report false")
	}
}

func TestOptionalLinks(t *testing.T) {
	p := Project{Repo: Link("#")}
	if url, ok := p.RepoURL(); !ok || url != "#" {
		t.Fatalf("RepoURL() = %q, %v", url, ok)
	}
	if _, ok := p.DemoURL(); ok {
		t.Fatal("nil demo should be absent")
	}
	p.Demo = Link("")
	if _, ok := p.DemoURL(); ok {
		t.Fatal("empty demo should be absent")
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.Len() != 7 {
		t.Fatalf("expected 7 compiled-in projects, got %d", c.Len())
	}
	first := c.All()[0]
	if first.ID != "defi" || !first.Featured {
		t.Fatalf("unexpected first project: %+v", first)
	}
	for _, p := range c.All() {
		if _, ok := p.DemoURL(); ok {
			t.Errorf("project %q: no compiled-in project has a demo", p.ID)
		}
	}
	if DefaultProfile().Email == "" {
		t.Fatal("profile email should be set")
	}
}
