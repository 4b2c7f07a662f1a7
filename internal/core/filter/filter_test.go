package filter

import (
	"testing"

	"github.com/sadopc/folio/internal/core/catalog"
)

func scenarioCatalog() *catalog.Catalog {
	return catalog.MustNew([]catalog.Project{
		{ID: "a", Domain: "X"},
		{ID: "b", Domain: "Y"},
		{ID: "c", Domain: "X"},
	})
}

func ids(projects []catalog.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestScenario(t *testing.T) {
	e := New(scenarioCatalog())

	if got := ids(e.Apply("X")); !equal(got, []string{"a", "c"}) {
		t.Errorf("Apply(X) = %v, want [a c]", got)
	}
	if got := e.Domains(); !equal(got, []string{"X", "Y"}) {
		t.Errorf("Domains() = %v, want [X Y]", got)
	}
	featured := e.Featured()
	if featured == nil || len(featured) != 0 {
		t.Errorf("Featured() = %v, want empty non-nil slice", featured)
	}
}

func TestApply_AllReturnsCatalogInOrder(t *testing.T) {
	for _, cat := range []*catalog.Catalog{scenarioCatalog(), catalog.Default()} {
		e := New(cat)
		got := e.Apply(All)
		if len(got) != cat.Len() {
			t.Fatalf("Apply(All) returned %d projects, want %d", len(got), cat.Len())
		}
		if !equal(ids(got), ids(cat.All())) {
			t.Errorf("Apply(All) order = %v, want %v", ids(got), ids(cat.All()))
		}
	}
}

func TestApply_DomainPartitions(t *testing.T) {
	cat := catalog.Default()
	e := New(cat)

	total := 0
	for _, d := range e.Domains() {
		got := e.Apply(d)
		want := 0
		for _, p := range cat.All() {
			if p.Domain == d {
				want++
			}
		}
		if len(got) != want {
			t.Errorf("Apply(%q) returned %d, want %d", d, len(got), want)
		}
		if len(got) == 0 {
			t.Errorf("Apply(%q) should never be empty for a listed domain", d)
		}
		for _, p := range got {
			if p.Domain != d {
				t.Errorf("Apply(%q) returned %q with domain %q", d, p.ID, p.Domain)
			}
		}
		total += len(got)
	}
	if total != cat.Len() {
		t.Errorf("domains cover %d projects, catalog has %d", total, cat.Len())
	}
}

func TestApply_UnknownDomainIsEmpty(t *testing.T) {
	e := New(scenarioCatalog())
	for _, sel := range []string{"Z", "", "x", "all"} {
		got := e.Apply(sel)
		if got == nil || len(got) != 0 {
			t.Errorf("Apply(%q) = %v, want empty", sel, got)
		}
	}
}

func TestDomains_FirstSeenNoDuplicates(t *testing.T) {
	e := New(catalog.Default())
	got := e.Domains()
	if !equal(got, []string{"Blockchain", "AI/ML", "Web"}) {
		t.Fatalf("Domains() = %v", got)
	}

	got[0] = "mutated"
	if e.Domains()[0] != "Blockchain" {
		t.Fatal("Domains() must return a copy")
	}
}

func TestFeatured_OnlyFlagged(t *testing.T) {
	cat := catalog.MustNew([]catalog.Project{
		{ID: "a", Domain: "X", Featured: true},
		{ID: "b", Domain: "X"},
		{ID: "c", Domain: "Y", Featured: false},
		{ID: "d", Domain: "Y", Featured: true},
	})
	got := ids(New(cat).Featured())
	if !equal(got, []string{"a", "d"}) {
		t.Fatalf("Featured() = %v, want [a d]", got)
	}

	if got := ids(New(catalog.Default()).Featured()); !equal(got, []string{"defi", "plant-disease"}) {
		t.Fatalf("default Featured() = %v", got)
	}
}

func TestKnown(t *testing.T) {
	e := New(scenarioCatalog())
	if !e.Known(All) || !e.Known("X") || !e.Known("Y") {
		t.Fatal("expected All, X and Y to be known")
	}
	if e.Known("Z") {
		t.Fatal("Z should be unknown")
	}
}

func TestSearch(t *testing.T) {
	projects := New(catalog.Default()).Apply(All)

	if got := Search(projects, ""); len(got) != len(projects) {
		t.Fatalf("empty query should return input, got %d", len(got))
	}

	got := ids(Search(projects, "solidity"))
	if !equal(got, []string{"defi"}) {
		t.Fatalf("Search(solidity) = %v, want [defi]", got)
	}

	got = ids(Search(projects, "python"))
	want := []string{"plant-disease", "steg-det", "finance-tracker"}
	if !equal(got, want) {
		t.Fatalf("Search(python) = %v, want %v", got, want)
	}

	if got := Search(projects, "zzzzqqq"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", ids(got))
	}
}
