package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"shelf/internal/application/commands"
	"shelf/internal/ports"
)

// RegisterWriteTools adds all mutating shelf tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, vault ports.VaultRepository, store ports.SettingsStore, history ports.History) {
	s.AddTool(shelveTool(), shelveHandler(vault, store, history))
	s.AddTool(prefixTool(), prefixHandler(vault, history))
	s.AddTool(addMappingTool(), addMappingHandler(store))
	s.AddTool(removeMappingTool(), removeMappingHandler(store))
}

// --- shelve ---

func shelveTool() mcp.Tool {
	return mcp.NewTool("shelve",
		mcp.WithDescription("Move (or copy, per the mapping's flags) a file into a mapping's folder. Name collisions get an incrementing ' N' suffix; the mapping may add a sortable time prefix."),
		mcp.WithString("file",
			mcp.Description("Vault-relative path of the file to shelve"),
			mcp.Required(),
		),
		mcp.WithString("mapping_id",
			mcp.Description("ID of the mapping to apply (see list_mappings)"),
			mcp.Required(),
		),
	)
}

func shelveHandler(vault ports.VaultRepository, store ports.SettingsStore, history ports.History) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		file := req.GetString("file", "")
		mappingID := req.GetString("mapping_id", "")

		cmd := commands.NewShelveCommand(vault, store, history, file, mappingID)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- prefix ---

func prefixTool() mcp.Tool {
	return mcp.NewTool("prefix",
		mcp.WithDescription("Rename a file in place, applying (or stripping) the sortable time prefix on its filename."),
		mcp.WithString("file",
			mcp.Description("Vault-relative path of the file"),
			mcp.Required(),
		),
		mcp.WithBoolean("strip",
			mcp.Description("Strip the prefix instead of applying one"),
		),
	)
}

func prefixHandler(vault ports.VaultRepository, history ports.History) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		file := req.GetString("file", "")
		strip := req.GetBool("strip", false)

		cmd := commands.NewPrefixCommand(vault, history, file, strip)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- add_mapping ---

func addMappingTool() mcp.Tool {
	return mcp.NewTool("add_mapping",
		mcp.WithDescription("Add a folder mapping. The mapping gets a generated stable ID."),
		mcp.WithString("folder",
			mcp.Description("Vault-relative target folder; empty means the vault root"),
		),
		mcp.WithString("name",
			mcp.Description("Display name for the mapping"),
			mcp.Required(),
		),
		mcp.WithBoolean("add_prefix",
			mcp.Description("Stamp a sortable time prefix on shelved filenames"),
		),
		mcp.WithBoolean("copy",
			mcp.Description("Copy files instead of moving them"),
		),
	)
}

func addMappingHandler(store ports.SettingsStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		folder := req.GetString("folder", "")
		name := req.GetString("name", "")
		addPrefix := req.GetBool("add_prefix", false)
		copyFile := req.GetBool("copy", false)

		cmd := commands.NewAddMappingCommand(store, folder, name, addPrefix, copyFile)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message + " (id " + result.Mapping.ID + ")"), nil
	}
}

// --- remove_mapping ---

func removeMappingTool() mcp.Tool {
	return mcp.NewTool("remove_mapping",
		mcp.WithDescription("Remove a folder mapping by ID."),
		mcp.WithString("mapping_id",
			mcp.Description("ID of the mapping to remove"),
			mcp.Required(),
		),
	)
}

func removeMappingHandler(store ports.SettingsStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		mappingID := req.GetString("mapping_id", "")

		cmd := commands.NewRemoveMappingCommand(store, mappingID)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}
