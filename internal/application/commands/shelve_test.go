package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"shelf/internal/domain"
	"shelf/internal/ports"
)

// fakeVault is an in-memory ports.VaultRepository for command tests.
type fakeVault struct {
	files   map[string][]byte
	folders map[string]bool
}

func newFakeVault() *fakeVault {
	return &fakeVault{
		files:   make(map[string][]byte),
		folders: make(map[string]bool),
	}
}

func (v *fakeVault) addFile(rel, content string) {
	v.files[rel] = []byte(content)
	if folder := domain.FolderOf(rel); folder != "" {
		v.folders[folder] = true
	}
}

func (v *fakeVault) Exists(rel string) (bool, error) {
	if _, ok := v.files[rel]; ok {
		return true, nil
	}
	return v.folders[rel], nil
}

func (v *fakeVault) Stat(rel string) (ports.Entry, error) {
	name := rel
	if idx := strings.LastIndex(rel, "/"); idx >= 0 {
		name = rel[idx+1:]
	}
	if _, ok := v.files[rel]; ok {
		return ports.Entry{Name: name}, nil
	}
	if v.folders[rel] {
		return ports.Entry{Name: name, IsDir: true}, nil
	}
	return ports.Entry{}, fmt.Errorf("no such path: %s", rel)
}

func (v *fakeVault) CreateFolder(rel string) error {
	parts := strings.Split(rel, "/")
	for i := range parts {
		v.folders[strings.Join(parts[:i+1], "/")] = true
	}
	return nil
}

func (v *fakeVault) ReadFile(rel string) ([]byte, error) {
	data, ok := v.files[rel]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", rel)
	}
	return data, nil
}

func (v *fakeVault) CreateFile(rel string, data []byte) error {
	if _, ok := v.files[rel]; ok {
		return fmt.Errorf("already exists: %s", rel)
	}
	v.files[rel] = data
	return nil
}

func (v *fakeVault) Rename(oldRel, newRel string) error {
	data, ok := v.files[oldRel]
	if !ok {
		return fmt.Errorf("no such file: %s", oldRel)
	}
	if _, ok := v.files[newRel]; ok {
		return fmt.Errorf("already exists: %s", newRel)
	}
	delete(v.files, oldRel)
	v.files[newRel] = data
	return nil
}

func (v *fakeVault) List(rel string) ([]ports.Entry, error) {
	var entries []ports.Entry
	prefix := ""
	if rel != "" {
		prefix = rel + "/"
	}
	for f := range v.files {
		if strings.HasPrefix(f, prefix) && !strings.Contains(f[len(prefix):], "/") {
			entries = append(entries, ports.Entry{Name: f[len(prefix):]})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// fakeStore is an in-memory ports.SettingsStore.
type fakeStore struct {
	settings *domain.Settings
	saves    int
}

func newFakeStore(mappings ...domain.Mapping) *fakeStore {
	return &fakeStore{settings: &domain.Settings{Mappings: mappings}}
}

func (s *fakeStore) Load() (*domain.Settings, error) {
	// Return a copy so commands exercise read-modify-write semantics.
	cp := &domain.Settings{Mappings: append([]domain.Mapping(nil), s.settings.Mappings...)}
	return cp, nil
}

func (s *fakeStore) Save(settings *domain.Settings) error {
	s.settings = settings
	s.saves++
	return nil
}

// fakeHistory records operations in memory.
type fakeHistory struct {
	ops []domain.Operation
}

func (h *fakeHistory) Record(op domain.Operation) error {
	h.ops = append(h.ops, op)
	return nil
}

func (h *fakeHistory) Recent(limit int) ([]domain.Operation, error) {
	if limit > len(h.ops) {
		limit = len(h.ops)
	}
	out := make([]domain.Operation, 0, limit)
	for i := len(h.ops) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, h.ops[i])
	}
	return out, nil
}

func (h *fakeHistory) Close() error { return nil }

func TestShelveCommand_Validate(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		mappingID string
		wantErr   bool
		errMsg    string
	}{
		{"valid", "note.md", "m1", false, ""},
		{"missing file", "", "m1", true, "file path is required"},
		{"missing mapping ID", "note.md", "", true, "mapping ID is required"},
		{"absolute file path", "/etc/passwd", "m1", true, "vault-relative"},
		{"escaping file path", "../note.md", "m1", true, "inside the vault"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &ShelveCommand{File: tt.file, MappingID: tt.mappingID}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestShelveCommand_Move(t *testing.T) {
	vault := newFakeVault()
	vault.addFile("note.md", "hello")
	store := newFakeStore(domain.Mapping{ID: "m1", Folder: "inbox", Name: "Inbox"})
	history := &fakeHistory{}

	cmd := NewShelveCommand(vault, store, history, "note.md", "m1")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Destination != "inbox/note.md" {
		t.Errorf("destination = %q, want inbox/note.md", result.Destination)
	}
	if _, ok := vault.files["note.md"]; ok {
		t.Error("source should be gone after a move")
	}
	if string(vault.files["inbox/note.md"]) != "hello" {
		t.Error("content should survive the move")
	}
	if !vault.folders["inbox"] {
		t.Error("destination folder should have been created")
	}
	if len(history.ops) != 1 || history.ops[0].Kind != domain.OpMove {
		t.Errorf("history = %+v, want one move", history.ops)
	}
}

func TestShelveCommand_Copy(t *testing.T) {
	vault := newFakeVault()
	vault.addFile("note.md", "hello")
	store := newFakeStore(domain.Mapping{ID: "m1", Folder: "archive", Name: "Archive", Copy: true})

	cmd := NewShelveCommand(vault, store, nil, "note.md", "m1")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Copied {
		t.Error("result should report a copy")
	}
	if string(vault.files["note.md"]) != "hello" {
		t.Error("source should be intact after a copy")
	}
	if string(vault.files["archive/note.md"]) != "hello" {
		t.Error("copy should land in the mapping folder")
	}
}

func TestShelveCommand_CollisionSuffix(t *testing.T) {
	vault := newFakeVault()
	vault.addFile("note.md", "new")
	vault.addFile("inbox/note.md", "old")
	vault.addFile("inbox/note 1.md", "older")
	store := newFakeStore(domain.Mapping{ID: "m1", Folder: "inbox", Name: "Inbox"})

	cmd := NewShelveCommand(vault, store, nil, "note.md", "m1")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Destination != "inbox/note 2.md" {
		t.Errorf("destination = %q, want inbox/note 2.md", result.Destination)
	}
	if string(vault.files["inbox/note.md"]) != "old" {
		t.Error("existing file should be untouched")
	}
}

func TestShelveCommand_AddPrefix(t *testing.T) {
	vault := newFakeVault()
	vault.addFile("note.md", "hello")
	store := newFakeStore(domain.Mapping{ID: "m1", Folder: "inbox", Name: "Inbox", AddPrefix: true})

	now := time.Unix(1700000000, 0)
	cmd := NewShelveCommand(vault, store, nil, "note.md", "m1")
	cmd.now = func() time.Time { return now }

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "inbox/" + domain.ApplyPrefix("note.md", now)
	if result.Destination != want {
		t.Errorf("destination = %q, want %q", result.Destination, want)
	}
}

func TestShelveCommand_RootMapping(t *testing.T) {
	vault := newFakeVault()
	vault.addFile("inbox/note.md", "hello")
	store := newFakeStore(domain.Mapping{ID: "m1", Folder: "", Name: "Root"})

	cmd := NewShelveCommand(vault, store, nil, "inbox/note.md", "m1")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Root destination is the bare filename, no leading separator.
	if result.Destination != "note.md" {
		t.Errorf("destination = %q, want note.md", result.Destination)
	}
}

func TestShelveCommand_Errors(t *testing.T) {
	now := time.Unix(1700000000, 0)

	tests := []struct {
		name      string
		setup     func(*fakeVault)
		mappings  []domain.Mapping
		file      string
		mappingID string
		errMsg    string
	}{
		{
			name:      "unknown mapping",
			setup:     func(v *fakeVault) { v.addFile("note.md", "x") },
			mappings:  []domain.Mapping{{ID: "m1", Folder: "inbox", Name: "Inbox"}},
			file:      "note.md",
			mappingID: "nope",
			errMsg:    "mapping not found",
		},
		{
			name:      "missing file",
			setup:     func(v *fakeVault) {},
			mappings:  []domain.Mapping{{ID: "m1", Folder: "inbox", Name: "Inbox"}},
			file:      "ghost.md",
			mappingID: "m1",
			errMsg:    "file not found",
		},
		{
			name:      "folder instead of file",
			setup:     func(v *fakeVault) { v.addFile("projects/note.md", "x") },
			mappings:  []domain.Mapping{{ID: "m1", Folder: "inbox", Name: "Inbox"}},
			file:      "projects",
			mappingID: "m1",
			errMsg:    "is a folder",
		},
		{
			name:      "already in destination",
			setup:     func(v *fakeVault) { v.addFile("inbox/note.md", "x") },
			mappings:  []domain.Mapping{{ID: "m1", Folder: "inbox", Name: "Inbox"}},
			file:      "inbox/note.md",
			mappingID: "m1",
			errMsg:    "already in inbox",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vault := newFakeVault()
			tt.setup(vault)
			store := newFakeStore(tt.mappings...)

			cmd := NewShelveCommand(vault, store, nil, tt.file, tt.mappingID)
			cmd.now = func() time.Time { return now }

			_, err := cmd.Execute(context.Background())
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.errMsg)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
			}
		})
	}
}

func TestPreviewCommand_DoesNotTouchVault(t *testing.T) {
	vault := newFakeVault()
	vault.addFile("note.md", "hello")
	vault.addFile("inbox/note.md", "old")
	store := newFakeStore(domain.Mapping{ID: "m1", Folder: "inbox", Name: "Inbox"})

	cmd := NewPreviewCommand(vault, store, "note.md", "m1")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Destination != "inbox/note 1.md" {
		t.Errorf("destination = %q, want inbox/note 1.md", result.Destination)
	}
	if _, ok := vault.files["note.md"]; !ok {
		t.Error("preview must not move the file")
	}
	if _, ok := vault.files["inbox/note 1.md"]; ok {
		t.Error("preview must not create files")
	}
}
