package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"shelf/internal/adapters/filesystem"
	"shelf/internal/adapters/obsidian"
	"shelf/internal/adapters/settings"
	"shelf/internal/adapters/sqlite"
	"shelf/internal/adapters/tui"
	"shelf/internal/config"
	"shelf/internal/ports"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the vault")
	flag.Parse()

	// Initialize adapters
	repo := filesystem.NewRepository(*vaultFlag)
	store := settings.NewStore(*vaultFlag)
	opener := obsidian.NewOpener(repo.VaultPath())

	// History is optional; the TUI works without it.
	var history ports.History
	h := sqlite.NewHistory()
	if err := h.Open(*vaultFlag); err == nil {
		history = h
		defer h.Close()
	}

	// Optional file argument preselects the file input.
	file := flag.Arg(0)

	app := tui.NewApp(repo, store, history, opener, file)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
