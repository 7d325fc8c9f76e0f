package obsidian

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"shelf/internal/ports"
)

// Opener implements ports.ObsidianOpener
type Opener struct {
	vaultName string
}

// Ensure Opener implements ObsidianOpener
var _ ports.ObsidianOpener = (*Opener)(nil)

// NewOpener creates a new Obsidian opener for the given vault path.
// Obsidian identifies vaults by their directory name.
func NewOpener(vaultPath string) *Opener {
	return &Opener{vaultName: filepath.Base(strings.TrimRight(vaultPath, "/"))}
}

// OpenFile opens a vault-relative file path in Obsidian using the
// obsidian:// URI scheme
func (o *Opener) OpenFile(rel string) error {
	uri, err := o.BuildURI(rel)
	if err != nil {
		return err
	}
	return openURI(uri)
}

// BuildURI constructs the obsidian:// URI for a vault-relative path
func (o *Opener) BuildURI(rel string) (string, error) {
	if rel == "" {
		return "", fmt.Errorf("file path is required")
	}
	if strings.HasPrefix(rel, "/") || strings.Contains(rel, "..") {
		return "", fmt.Errorf("file path must be vault-relative: %s", rel)
	}

	uri := fmt.Sprintf("obsidian://open?vault=%s&file=%s",
		url.QueryEscape(o.vaultName),
		url.QueryEscape(rel),
	)
	return uri, nil
}

func openURI(uri string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "linux":
		cmd = exec.Command("xdg-open", uri)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", uri)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return cmd.Run()
}
