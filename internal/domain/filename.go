package domain

import (
	"fmt"
	"strings"
)

// SplitName splits a filename into base and extension. The extension
// includes the leading dot. Names without a dot, and dotfiles like
// ".gitignore", are treated as all base.
func SplitName(name string) (base, ext string) {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return name, ""
	}
	return name[:idx], name[idx:]
}

// JoinFolder joins a vault-relative folder and a filename. An empty
// folder denotes the vault root and yields the bare filename with no
// leading separator.
func JoinFolder(folder, name string) string {
	if folder == "" {
		return name
	}
	return folder + "/" + name
}

// FolderOf returns the vault-relative folder containing a file path,
// "" for files at the vault root.
func FolderOf(rel string) string {
	idx := strings.LastIndex(rel, "/")
	if idx < 0 {
		return ""
	}
	return rel[:idx]
}

// AvailablePath returns a destination path in folder that does not
// collide with an existing item, per the exists check. The desired name
// is tried first, then "base 1.ext", "base 2.ext", and so on with a
// strictly increasing counter.
func AvailablePath(folder, name string, exists func(string) bool) string {
	candidate := JoinFolder(folder, name)
	if !exists(candidate) {
		return candidate
	}

	base, ext := SplitName(name)
	for n := 1; ; n++ {
		candidate = JoinFolder(folder, fmt.Sprintf("%s %d%s", base, n, ext))
		if !exists(candidate) {
			return candidate
		}
	}
}
