package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"clipdeck/internal/domain"
	"clipdeck/internal/service"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// EventEmitter lets tool handlers notify the frontend about changes they made.
type EventEmitter interface {
	Emit(ctx context.Context, event string, data any)
}

// ClipRunner runs a clip block end to end and reports the outcome.
type ClipRunner interface {
	Run(ctx context.Context, clipID string) (domain.RunResult, error)
}

// Server exposes clip and block operations over the Model Context Protocol
// so AI agents can browse, edit, and run clips.
type Server struct {
	mcp     *server.MCPServer
	emitter EventEmitter

	// Services (injected from the app layer)
	blocks *service.BlockService
	types  *service.BlockTypeService
	labels *service.LabelService
	runner ClipRunner
}

// Deps holds all dependencies passed from the App layer to the MCP server.
type Deps struct {
	Emitter EventEmitter
	Blocks  *service.BlockService
	Types   *service.BlockTypeService
	Labels  *service.LabelService
	Runner  ClipRunner
}

// New creates and configures an MCP server with all tools and resources.
func New(deps Deps) *Server {
	s := &Server{
		emitter: deps.Emitter,
		blocks:  deps.Blocks,
		types:   deps.Types,
		labels:  deps.Labels,
		runner:  deps.Runner,
	}

	s.mcp = server.NewMCPServer(
		"clipdeck-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	s.registerClipTools()
	s.registerBlockTools()
	s.registerLabelTools()
	s.registerResources()

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	log.Println("[MCP] Starting stdio server...")
	return server.ServeStdio(s.mcp)
}

// ── Helpers ────────────────────────────────────────────────

// emitBlocksChanged notifies the frontend that a tool modified blocks.
func (s *Server) emitBlocksChanged(ctx context.Context) {
	s.emitter.Emit(ctx, service.EventBlocksChanged, nil)
}

// textResult creates a simple text tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

// jsonResult serializes v to JSON and wraps it in a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(data)), nil
}

func boolPtr(b bool) *bool { return &b }
