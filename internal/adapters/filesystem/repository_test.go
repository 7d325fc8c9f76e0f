package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(t.TempDir())
}

func TestExists(t *testing.T) {
	repo := newTestRepo(t)

	ok, err := repo.Exists("ghost.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("missing file should not exist")
	}

	if err := repo.CreateFile("note.md", []byte("hi")); err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err = repo.Exists("note.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("created file should exist")
	}

	// Root always exists.
	if ok, _ := repo.Exists(""); !ok {
		t.Error("vault root should exist")
	}
}

func TestCreateFileRefusesOverwrite(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.CreateFile("note.md", []byte("one")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.CreateFile("note.md", []byte("two")); err == nil {
		t.Error("second create at the same path should fail")
	}

	data, err := repo.ReadFile("note.md")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "one" {
		t.Errorf("content = %q, want original", data)
	}
}

func TestCreateFolderAndRename(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.CreateFolder("projects/active"); err != nil {
		t.Fatalf("create folder: %v", err)
	}
	if err := repo.CreateFile("note.md", []byte("hi")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Rename("note.md", "projects/active/note.md"); err != nil {
		t.Fatalf("rename: %v", err)
	}

	if ok, _ := repo.Exists("note.md"); ok {
		t.Error("old path should be gone")
	}

	entry, err := repo.Stat("projects/active/note.md")
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if entry.IsDir || entry.Name != "note.md" {
		t.Errorf("entry = %+v", entry)
	}
}

func TestStatFolder(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.CreateFolder("inbox"); err != nil {
		t.Fatalf("create folder: %v", err)
	}

	entry, err := repo.Stat("inbox")
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !entry.IsDir {
		t.Error("folder should stat as a dir")
	}
}

func TestList(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.CreateFolder("inbox"); err != nil {
		t.Fatalf("create folder: %v", err)
	}
	if err := repo.CreateFile("inbox/a.md", nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.CreateFile("inbox/b.md", nil); err != nil {
		t.Fatalf("create: %v", err)
	}

	entries, err := repo.List("inbox")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2", len(entries))
	}
}

func TestRejectsEscapingPaths(t *testing.T) {
	repo := newTestRepo(t)

	paths := []string{"../outside.md", "a/../../outside.md", "/etc/passwd"}
	for _, p := range paths {
		if _, err := repo.Exists(p); err == nil {
			t.Errorf("Exists(%q) should fail", p)
		}
		if err := repo.CreateFile(p, nil); err == nil {
			t.Errorf("CreateFile(%q) should fail", p)
		}
	}
}

func TestTildeExpansion(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	repo := NewRepository("~/vault")
	if repo.VaultPath() != filepath.Join(home, "vault") {
		t.Errorf("vault path = %q", repo.VaultPath())
	}
}
