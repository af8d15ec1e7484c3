package mcpserver

import (
	"context"
	"fmt"

	"clipdeck/internal/domain"
	"clipdeck/internal/service"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerClipTools() {
	// ── list_clips ─────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_clips",
		mcp.WithDescription("List all clip blocks with their names, shortcuts, and child block IDs"),
	), s.handleListClips)

	// ── run_clip ───────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("run_clip",
		mcp.WithDescription("Run a clip block: resolves its children, validates required block types, and dispatches the action. Returns the run outcome."),
		mcp.WithString("clipId", mcp.Description("ID of the clip block to run"), mcp.Required()),
	), s.handleRunClip)
}

// clipSummary is the compact shape returned by list_clips.
type clipSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Action   string `json:"action"`
	Shortcut string `json:"shortcut,omitempty"`
	Children int    `json:"children"`
}

func (s *Server) handleListClips(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	blocks, err := s.blocks.List()
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}

	summaries := []clipSummary{}
	for _, b := range blocks {
		if b.Type != domain.BlockTypeClip {
			continue
		}
		summaries = append(summaries, clipSummary{
			ID:       b.ID,
			Name:     b.StringProp("name"),
			Action:   clipAction(blocks, b),
			Shortcut: b.Shortcut(),
			Children: len(b.Content),
		})
	}
	return jsonResult(summaries)
}

// clipAction reports the action type of the clip's action child, if any.
func clipAction(all []domain.Block, clip domain.Block) string {
	byID := make(map[string]domain.Block, len(all))
	for _, b := range all {
		byID[b.ID] = b
	}
	for _, id := range clip.Content {
		if child, ok := byID[id]; ok && child.Type == domain.BlockTypeAction {
			return child.ActionType()
		}
	}
	return ""
}

func (s *Server) handleRunClip(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	clipID, _ := args["clipId"].(string)
	if clipID == "" {
		return textResult("clipId is required"), nil
	}

	result, err := s.runner.Run(ctx, clipID)
	if err != nil {
		return nil, fmt.Errorf("run clip %s: %w", clipID, err)
	}
	s.emitter.Emit(ctx, service.EventClipRunDone, result)
	return jsonResult(result)
}
