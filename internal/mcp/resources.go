package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerResources() {
	// ── clipdeck://blocks ──────────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		"clipdeck://blocks",
		"All Blocks",
		mcp.WithMIMEType("application/json"),
	), s.handleBlocksResource)

	// ── clipdeck://block-types ─────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		"clipdeck://block-types",
		"Registered Block Types",
		mcp.WithMIMEType("application/json"),
	), s.handleBlockTypesResource)
}

func (s *Server) handleBlocksResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	blocks, err := s.blocks.List()
	if err != nil {
		return nil, err
	}

	data, _ := json.MarshalIndent(blocks, "", "  ")
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "clipdeck://blocks",
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (s *Server) handleBlockTypesResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	types, err := s.types.List()
	if err != nil {
		return nil, err
	}

	data, _ := json.MarshalIndent(types, "", "  ")
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "clipdeck://block-types",
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
