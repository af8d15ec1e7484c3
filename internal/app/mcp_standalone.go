package app

import (
	"context"
	"log"

	"clipdeck/internal/config"
	"clipdeck/internal/engine"
	mcpserver "clipdeck/internal/mcp"
	"clipdeck/internal/scripthost"
	"clipdeck/internal/service"
	"clipdeck/internal/storage"
)

// noopEmitter is a no-op EventEmitter used in MCP-only mode (no Wails frontend).
type noopEmitter struct{}

func (noopEmitter) Emit(_ context.Context, _ string, _ any) {}

// noopClipboard swallows clipboard writes in headless mode. Copy actions
// still succeed so agents can exercise the full run pipeline over stdio.
type noopClipboard struct{}

func (noopClipboard) WriteText(_ string) error { return nil }

// ServeMCP runs the app as a standalone MCP server on stdin/stdout with no GUI.
// It initializes storage and services and serves until stdin closes.
func ServeMCP() {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := storage.New(cfg.DatabasePath())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	blockStore := storage.NewBlockStore(db)
	typeStore := storage.NewBlockTypeStore(db)
	labelStore := storage.NewLabelStore(db)

	emitter := noopEmitter{}
	blocksSvc := service.NewBlockService(blockStore, typeStore, emitter)
	typesSvc := service.NewBlockTypeService(typeStore, emitter)
	labelsSvc := service.NewLabelService(labelStore, emitter)

	var scripts engine.ScriptHost = scripthost.Disabled{}
	if cfg.Scripts.Enabled {
		scripts = scripthost.NewShellHost(cfg.Scripts.Shell)
	}
	runner := engine.New(blockStore, noopClipboard{}, scripts)

	mcpSrv := mcpserver.New(mcpserver.Deps{
		Emitter: emitter,
		Blocks:  blocksSvc,
		Types:   typesSvc,
		Labels:  labelsSvc,
		Runner:  runner,
	})

	log.Println("[MCP] Starting standalone stdio server...")
	if err := mcpSrv.ServeStdio(); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
