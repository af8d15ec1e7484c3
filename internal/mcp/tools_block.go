package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"clipdeck/internal/domain"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerBlockTools() {
	// ── list_blocks ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_blocks",
		mcp.WithDescription("List all blocks, optionally filtered by type"),
		mcp.WithString("type", mcp.Description("Filter by block type (optional): clip, action, project_root, selected_path, or a custom type")),
	), s.handleListBlocks)

	// ── get_block ──────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("get_block",
		mcp.WithDescription("Fetch a single block by ID"),
		mcp.WithString("blockId", mcp.Description("Block ID"), mcp.Required()),
	), s.handleGetBlock)

	// ── create_block ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("create_block",
		mcp.WithDescription("Create a new block. Omitted fields fall back to defaults (type 'clip', empty properties and children)."),
		mcp.WithString("type",
			mcp.Description("Block type: clip, action, project_root, selected_path, or a custom type"),
		),
		mcp.WithString("properties", mcp.Description("Block properties as a JSON object string (optional)")),
		mcp.WithString("children", mcp.Description("Comma-separated child block IDs (optional)")),
		mcp.WithString("parent", mcp.Description("Parent block ID (optional)")),
	), s.handleCreateBlock)

	// ── update_block ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("update_block",
		mcp.WithDescription("Replace a block's type, properties, children, and parent. Fields not provided are cleared, so pass the full desired state."),
		mcp.WithString("blockId", mcp.Description("Block ID"), mcp.Required()),
		mcp.WithString("type", mcp.Description("Block type"), mcp.Required()),
		mcp.WithString("properties", mcp.Description("Block properties as a JSON object string (optional)")),
		mcp.WithString("children", mcp.Description("Comma-separated child block IDs (optional)")),
		mcp.WithString("parent", mcp.Description("Parent block ID (optional)")),
	), s.handleUpdateBlock)

	// ── delete_block (destructive) ─────────────────────
	s.mcp.AddTool(mcp.NewTool("delete_block",
		mcp.WithDescription("🛑 DESTRUCTIVE: Delete a block. Child blocks are not deleted; references to the block go dangling."),
		mcp.WithString("blockId", mcp.Description("Block ID to delete"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleDeleteBlock)

	// ── list_block_types ───────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_block_types",
		mcp.WithDescription("List all registered block types with their field definitions"),
	), s.handleListBlockTypes)
}

func (s *Server) handleListBlocks(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	filter, _ := args["type"].(string)

	blocks, err := s.blocks.List()
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	if filter == "" {
		return jsonResult(blocks)
	}

	filtered := []domain.Block{}
	for _, b := range blocks {
		if b.Type == filter {
			filtered = append(filtered, b)
		}
	}
	return jsonResult(filtered)
}

func (s *Server) handleGetBlock(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	blockID, _ := args["blockId"].(string)

	block, err := s.blocks.Get(blockID)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", blockID, err)
	}
	if block == nil {
		return textResult(fmt.Sprintf("Block %s not found", blockID)), nil
	}
	return jsonResult(block)
}

func (s *Server) handleCreateBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	block := domain.Block{
		Type:   stringArg(args, "type"),
		Parent: stringArg(args, "parent"),
	}
	if props := stringArg(args, "properties"); props != "" {
		if err := parseJSON(props, &block.Properties); err != nil {
			return textResult(fmt.Sprintf("Invalid properties JSON: %v", err)), nil
		}
	}
	block.Content = splitIDs(stringArg(args, "children"))

	id, err := s.blocks.Create(ctx, &block)
	if err != nil {
		return nil, fmt.Errorf("create block: %w", err)
	}
	s.emitBlocksChanged(ctx)
	return textResult(fmt.Sprintf("Block %s created", id)), nil
}

func (s *Server) handleUpdateBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	blockID, _ := args["blockId"].(string)

	existing, err := s.blocks.Get(blockID)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", blockID, err)
	}
	if existing == nil {
		return textResult(fmt.Sprintf("Block %s not found", blockID)), nil
	}

	block := domain.Block{
		ID:         blockID,
		Type:       stringArg(args, "type"),
		Properties: map[string]any{},
		Content:    splitIDs(stringArg(args, "children")),
		Parent:     stringArg(args, "parent"),
	}
	if props := stringArg(args, "properties"); props != "" {
		if err := parseJSON(props, &block.Properties); err != nil {
			return textResult(fmt.Sprintf("Invalid properties JSON: %v", err)), nil
		}
	}

	if err := s.blocks.Update(ctx, &block); err != nil {
		return nil, fmt.Errorf("update block %s: %w", blockID, err)
	}
	s.emitBlocksChanged(ctx)
	return textResult(fmt.Sprintf("Block %s updated", blockID)), nil
}

func (s *Server) handleDeleteBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	blockID, _ := args["blockId"].(string)

	if err := s.blocks.Delete(ctx, blockID); err != nil {
		return nil, fmt.Errorf("delete block %s: %w", blockID, err)
	}
	s.emitBlocksChanged(ctx)
	return textResult(fmt.Sprintf("Block %s deleted", blockID)), nil
}

func (s *Server) handleListBlockTypes(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	types, err := s.types.List()
	if err != nil {
		return nil, fmt.Errorf("list block types: %w", err)
	}
	return jsonResult(types)
}

func stringArg(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}

// splitIDs parses "a, b, c" into a trimmed slice, dropping empty entries.
func splitIDs(csv string) []string {
	ids := []string{}
	for _, part := range strings.Split(csv, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
