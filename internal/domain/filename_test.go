package domain

import "testing"

func TestSplitName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantBase string
		wantExt  string
	}{
		{"markdown file", "note.md", "note", ".md"},
		{"no extension", "Makefile", "Makefile", ""},
		{"dotfile", ".gitignore", ".gitignore", ""},
		{"multiple dots", "archive.tar.gz", "archive.tar", ".gz"},
		{"trailing dot", "weird.", "weird", "."},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, ext := SplitName(tt.input)
			if base != tt.wantBase || ext != tt.wantExt {
				t.Errorf("SplitName(%q) = (%q, %q), want (%q, %q)",
					tt.input, base, ext, tt.wantBase, tt.wantExt)
			}
		})
	}
}

func TestJoinFolder(t *testing.T) {
	tests := []struct {
		name   string
		folder string
		file   string
		want   string
	}{
		{"root folder yields bare name", "", "note.md", "note.md"},
		{"simple folder", "inbox", "note.md", "inbox/note.md"},
		{"nested folder", "projects/active", "note.md", "projects/active/note.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinFolder(tt.folder, tt.file); got != tt.want {
				t.Errorf("JoinFolder(%q, %q) = %q, want %q", tt.folder, tt.file, got, tt.want)
			}
		})
	}
}

func TestFolderOf(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{"note.md", ""},
		{"inbox/note.md", "inbox"},
		{"a/b/c.md", "a/b"},
	}

	for _, tt := range tests {
		if got := FolderOf(tt.rel); got != tt.want {
			t.Errorf("FolderOf(%q) = %q, want %q", tt.rel, got, tt.want)
		}
	}
}

func TestAvailablePath(t *testing.T) {
	tests := []struct {
		name     string
		folder   string
		file     string
		occupied []string
		want     string
	}{
		{
			name:   "no collision",
			folder: "inbox",
			file:   "note.md",
			want:   "inbox/note.md",
		},
		{
			name:     "single collision",
			folder:   "inbox",
			file:     "note.md",
			occupied: []string{"inbox/note.md"},
			want:     "inbox/note 1.md",
		},
		{
			name:     "counter skips occupied values",
			folder:   "inbox",
			file:     "note.md",
			occupied: []string{"inbox/note.md", "inbox/note 1.md", "inbox/note 2.md"},
			want:     "inbox/note 3.md",
		},
		{
			name:     "no extension",
			folder:   "inbox",
			file:     "Makefile",
			occupied: []string{"inbox/Makefile"},
			want:     "inbox/Makefile 1",
		},
		{
			name:     "root folder",
			folder:   "",
			file:     "note.md",
			occupied: []string{"note.md"},
			want:     "note 1.md",
		},
		{
			name:     "counter goes before extension",
			folder:   "",
			file:     "archive.tar.gz",
			occupied: []string{"archive.tar.gz"},
			want:     "archive.tar 1.gz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occupied := make(map[string]bool, len(tt.occupied))
			for _, p := range tt.occupied {
				occupied[p] = true
			}
			got := AvailablePath(tt.folder, tt.file, func(p string) bool {
				return occupied[p]
			})
			if got != tt.want {
				t.Errorf("AvailablePath(%q, %q) = %q, want %q", tt.folder, tt.file, got, tt.want)
			}
		})
	}
}

// Counters must increase strictly from 1 as the folder fills up.
func TestAvailablePathIncreasingCounters(t *testing.T) {
	occupied := make(map[string]bool)
	exists := func(p string) bool { return occupied[p] }

	want := []string{
		"inbox/note.md",
		"inbox/note 1.md",
		"inbox/note 2.md",
		"inbox/note 3.md",
		"inbox/note 4.md",
	}

	for i, expected := range want {
		got := AvailablePath("inbox", "note.md", exists)
		if got != expected {
			t.Fatalf("iteration %d: got %q, want %q", i, got, expected)
		}
		occupied[got] = true
	}
}
