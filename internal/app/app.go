package app

import (
	"context"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"clipdeck/internal/config"
	"clipdeck/internal/engine"
	"clipdeck/internal/scripthost"
	"clipdeck/internal/service"
	"clipdeck/internal/storage"
)

// App is the main Wails application struct.
// All exported methods are available as Wails bindings.
type App struct {
	ctx context.Context

	cfg *config.Config
	db  *storage.DB

	blocks   *service.BlockService
	types    *service.BlockTypeService
	labels   *service.LabelService
	runner   *engine.Runner
	triggers *service.TriggerService
}

// New creates a new App.
func New() *App {
	return &App{}
}

// Emit implements service.EventEmitter by forwarding to the Wails event bus.
func (a *App) Emit(ctx context.Context, event string, data any) {
	wailsRuntime.EventsEmit(ctx, event, data)
}

// wailsClipboard writes clip output through the Wails runtime clipboard.
type wailsClipboard struct {
	app *App
}

func (c wailsClipboard) WriteText(text string) error {
	return wailsRuntime.ClipboardSetText(c.app.ctx, text)
}

// Startup is called when the app starts.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		wailsRuntime.LogFatalf(ctx, "Failed to load config: %v", err)
		return
	}
	a.cfg = cfg

	db, err := storage.New(cfg.DatabasePath())
	if err != nil {
		wailsRuntime.LogFatalf(ctx, "Failed to open database: %v", err)
		return
	}
	a.db = db

	blockStore := storage.NewBlockStore(db)
	typeStore := storage.NewBlockTypeStore(db)
	labelStore := storage.NewLabelStore(db)

	a.blocks = service.NewBlockService(blockStore, typeStore, a)
	a.types = service.NewBlockTypeService(typeStore, a)
	a.labels = service.NewLabelService(labelStore, a)

	var scripts engine.ScriptHost = scripthost.Disabled{}
	if cfg.Scripts.Enabled {
		scripts = scripthost.NewShellHost(cfg.Scripts.Shell)
	}
	a.runner = engine.New(blockStore, wailsClipboard{app: a}, scripts)

	a.triggers = service.NewTriggerService(blockStore, a.runner, service.NoopRegistrar{}, a)
	a.triggers.SyncShortcuts(ctx)
	a.triggers.RestartTriggers(ctx)
}

// Shutdown is called when the app is closing.
func (a *App) Shutdown(_ context.Context) {
	if a.triggers != nil {
		a.triggers.Stop()
	}
	if a.db != nil {
		a.db.Close()
	}
}
