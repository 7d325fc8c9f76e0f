package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"shelf/internal/application/commands"
	"shelf/internal/ports"
)

// RegisterReadTools adds all read-only shelf tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, vault ports.VaultRepository, store ports.SettingsStore, history ports.History) {
	s.AddTool(listMappingsTool(), listMappingsHandler(store))
	s.AddTool(previewTool(), previewHandler(vault, store))
	if history != nil {
		s.AddTool(historyTool(), historyHandler(history))
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

// --- list_mappings ---

func listMappingsTool() mcp.Tool {
	return mcp.NewTool("list_mappings",
		mcp.WithDescription("List the configured folder mappings in order. Each line shows the mapping ID, display name, target folder, and behavior flags."),
	)
}

func listMappingsHandler(store ports.SettingsStore) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		settings, err := store.Load()
		if err != nil {
			return toolError(err)
		}

		if len(settings.Mappings) == 0 {
			return mcp.NewToolResultText("No mappings configured."), nil
		}

		var sb strings.Builder
		for _, m := range settings.Mappings {
			flags := make([]string, 0, 2)
			if m.AddPrefix {
				flags = append(flags, "prefix")
			}
			if m.Copy {
				flags = append(flags, "copy")
			}
			flagText := ""
			if len(flags) > 0 {
				flagText = "  [" + strings.Join(flags, ",") + "]"
			}
			fmt.Fprintf(&sb, "%s  %s -> %s%s\n", m.ID, m.Name, m.Target(), flagText)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- preview ---

func previewTool() mcp.Tool {
	return mcp.NewTool("preview",
		mcp.WithDescription("Compute where shelving a file through a mapping would place it, without modifying the vault."),
		mcp.WithString("file",
			mcp.Description("Vault-relative path of the file"),
			mcp.Required(),
		),
		mcp.WithString("mapping_id",
			mcp.Description("ID of the mapping to apply"),
			mcp.Required(),
		),
	)
}

func previewHandler(vault ports.VaultRepository, store ports.SettingsStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		file := req.GetString("file", "")
		mappingID := req.GetString("mapping_id", "")

		cmd := commands.NewPreviewCommand(vault, store, file, mappingID)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("history",
		mcp.WithDescription("Show recent shelf operations, newest first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of operations to return (default 20)"),
		),
	)
}

func historyHandler(history ports.History) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := req.GetInt("limit", 20)

		ops, err := history.Recent(limit)
		if err != nil {
			return toolError(err)
		}

		if len(ops) == 0 {
			return mcp.NewToolResultText("No operations recorded."), nil
		}

		var sb strings.Builder
		for _, op := range ops {
			fmt.Fprintf(&sb, "%s  %s  %s -> %s\n",
				op.At.Format("2006-01-02 15:04:05"), op.Kind, op.Source, op.Destination)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}
