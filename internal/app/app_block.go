package app

import (
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"clipdeck/internal/domain"
	"clipdeck/internal/service"
)

// MutationResult is what block mutations return to the frontend.
type MutationResult struct {
	Success bool   `json:"success"`
	NewID   string `json:"newId,omitempty"`
	Error   string `json:"error,omitempty"`
}

// LoadBlocks returns every block, oldest first.
func (a *App) LoadBlocks() ([]domain.Block, error) {
	return a.blocks.List()
}

// GetBlock returns a single block, or nil when it does not exist.
func (a *App) GetBlock(id string) (*domain.Block, error) {
	return a.blocks.Get(id)
}

// CreateBlock persists a new block and reports its generated ID.
func (a *App) CreateBlock(b domain.Block) MutationResult {
	id, err := a.blocks.Create(a.ctx, &b)
	if err != nil {
		wailsRuntime.LogErrorf(a.ctx, "[blocks] create failed: %v", err)
		return MutationResult{Error: err.Error()}
	}
	a.resyncTriggers()
	return MutationResult{Success: true, NewID: id}
}

// UpdateBlock replaces a block's stored state.
func (a *App) UpdateBlock(b domain.Block) MutationResult {
	if err := a.blocks.Update(a.ctx, &b); err != nil {
		wailsRuntime.LogErrorf(a.ctx, "[blocks] update failed: %v", err)
		return MutationResult{Error: err.Error()}
	}
	a.resyncTriggers()
	return MutationResult{Success: true}
}

// DeleteBlock removes a block. Children are left in place.
func (a *App) DeleteBlock(id string) MutationResult {
	if err := a.blocks.Delete(a.ctx, id); err != nil {
		wailsRuntime.LogErrorf(a.ctx, "[blocks] delete failed: %v", err)
		return MutationResult{Error: err.Error()}
	}
	a.resyncTriggers()
	return MutationResult{Success: true}
}

// RunBlock runs a clip block and returns the outcome envelope.
// The same envelope is also emitted as an event so listeners that did
// not initiate the run (shortcut handlers, toasts) stay in sync.
func (a *App) RunBlock(id string) domain.RunResult {
	result, err := a.runner.Run(a.ctx, id)
	if err != nil {
		wailsRuntime.LogErrorf(a.ctx, "[clip run] %s: %v", id, err)
		result = domain.Failure(err.Error())
	}
	a.Emit(a.ctx, service.EventClipRunDone, result)
	return result
}

// resyncTriggers re-registers shortcuts and file/cron triggers after any
// block mutation, since clip properties may have changed.
func (a *App) resyncTriggers() {
	a.triggers.SyncShortcuts(a.ctx)
	a.triggers.RestartTriggers(a.ctx)
}
