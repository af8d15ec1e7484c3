package app

import (
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"clipdeck/internal/domain"
)

// LoadBlockTypes returns every registered block type, fields sorted by order.
func (a *App) LoadBlockTypes() ([]domain.BlockType, error) {
	return a.types.List()
}

// CreateBlockType registers a new block type.
func (a *App) CreateBlockType(bt domain.BlockType) MutationResult {
	id, err := a.types.Create(a.ctx, &bt)
	if err != nil {
		wailsRuntime.LogErrorf(a.ctx, "[blockTypes] create failed: %v", err)
		return MutationResult{Error: err.Error()}
	}
	return MutationResult{Success: true, NewID: id}
}

// UpdateBlockType replaces a block type definition.
func (a *App) UpdateBlockType(bt domain.BlockType) MutationResult {
	if err := a.types.Update(a.ctx, &bt); err != nil {
		wailsRuntime.LogErrorf(a.ctx, "[blockTypes] update failed: %v", err)
		return MutationResult{Error: err.Error()}
	}
	return MutationResult{Success: true}
}

// DeleteBlockType removes a block type. Blocks of that type are untouched.
func (a *App) DeleteBlockType(id string) MutationResult {
	if err := a.types.Delete(a.ctx, id); err != nil {
		wailsRuntime.LogErrorf(a.ctx, "[blockTypes] delete failed: %v", err)
		return MutationResult{Error: err.Error()}
	}
	return MutationResult{Success: true}
}
