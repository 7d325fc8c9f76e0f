package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"shelf/internal/adapters/filesystem"
	mcpadapter "shelf/internal/adapters/mcp"
	"shelf/internal/adapters/settings"
	"shelf/internal/adapters/sqlite"
	"shelf/internal/config"
	"shelf/internal/ports"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the vault")
	flag.Parse()

	repo := filesystem.NewRepository(*vaultFlag)
	store := settings.NewStore(*vaultFlag)

	// History is optional; tools that need it are skipped without it.
	var history ports.History
	h := sqlite.NewHistory()
	if err := h.Open(*vaultFlag); err == nil {
		history = h
		defer h.Close()
	}

	mcpServer := server.NewMCPServer(
		"shelf-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo, store, history)
	mcpadapter.RegisterWriteTools(mcpServer, repo, store, history)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("shelf-mcp: %v", err)
	}
}
