package settings

import (
	"os"
	"path/filepath"
	"testing"

	"shelf/internal/domain"
)

func TestLoadDefaultsWhenAbsent(t *testing.T) {
	store := NewStore(t.TempDir())

	settings, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings == nil || settings.Mappings == nil {
		t.Fatal("defaults should have a non-nil mapping list")
	}
	if len(settings.Mappings) != 0 {
		t.Errorf("defaults should be empty, got %d mappings", len(settings.Mappings))
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	vault := t.TempDir()
	store := NewStore(vault)

	in := &domain.Settings{Mappings: []domain.Mapping{
		{ID: "a", Folder: "inbox", Name: "Inbox", AddPrefix: true},
		{ID: "b", Folder: "", Name: "Root", Copy: true},
	}}

	if err := store.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(out.Mappings) != 2 {
		t.Fatalf("got %d mappings, want 2", len(out.Mappings))
	}
	if out.Mappings[0] != in.Mappings[0] || out.Mappings[1] != in.Mappings[1] {
		t.Errorf("round trip changed mappings: %+v", out.Mappings)
	}

	// File lands inside the vault's .shelf directory.
	if _, err := os.Stat(filepath.Join(vault, ".shelf", "settings.json")); err != nil {
		t.Errorf("settings file missing: %v", err)
	}
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	vault := t.TempDir()
	store := NewStore(vault)

	if err := os.MkdirAll(filepath.Join(vault, ".shelf"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(vault, ".shelf", "settings.json"), []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Load(); err == nil {
		t.Error("corrupt settings should fail to load")
	}
}
