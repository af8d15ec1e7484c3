package mcpserver

import (
	"context"
	"fmt"

	"clipdeck/internal/domain"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerLabelTools() {
	// ── list_labels ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_labels",
		mcp.WithDescription("List all labels"),
	), s.handleListLabels)

	// ── create_label ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("create_label",
		mcp.WithDescription("Create a new label"),
		mcp.WithString("name", mcp.Description("Label name"), mcp.Required()),
		mcp.WithString("color", mcp.Description("Label color, e.g. #ff8800 (optional)")),
	), s.handleCreateLabel)
}

func (s *Server) handleListLabels(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	labels, err := s.labels.List()
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	return jsonResult(labels)
}

func (s *Server) handleCreateLabel(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	label := domain.Label{
		Name:  stringArg(args, "name"),
		Color: stringArg(args, "color"),
	}
	id, err := s.labels.Create(ctx, &label)
	if err != nil {
		return nil, fmt.Errorf("create label: %w", err)
	}
	return textResult(fmt.Sprintf("Label %s created", id)), nil
}
