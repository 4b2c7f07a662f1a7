package prefs

import (
	"path/filepath"
	"testing"

	"github.com/sadopc/folio/internal/core/state"
)

func TestStore_ThemeUnsetByDefault(t *testing.T) {
	store, err := NewStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	got, ok, err := store.Theme()
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected no saved theme")
	}
	if got != state.Light {
		t.Errorf("expected light fallback, got %v", got)
	}
}

func TestStore_SetThemeOverwrites(t *testing.T) {
	store, err := NewStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if err := store.SetTheme(state.Dark); err != nil {
		t.Fatal(err)
	}
	got, ok, err := store.Theme()
	if err != nil || !ok || got != state.Dark {
		t.Fatalf("Theme() = %v, %v, %v; want dark", got, ok, err)
	}

	if err := store.SetTheme(state.Light); err != nil {
		t.Fatal(err)
	}
	got, _, _ = store.Theme()
	if got != state.Light {
		t.Errorf("expected light after overwrite, got %v", got)
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.db")

	store, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SetTheme(state.Dark); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	got, ok, err := store.Theme()
	if err != nil || !ok || got != state.Dark {
		t.Fatalf("Theme() after reopen = %v, %v, %v; want dark", got, ok, err)
	}
}
