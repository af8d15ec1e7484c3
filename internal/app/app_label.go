package app

import (
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"clipdeck/internal/domain"
)

// LoadLabels returns every label.
func (a *App) LoadLabels() ([]domain.Label, error) {
	return a.labels.List()
}

// CreateLabel persists a new label.
func (a *App) CreateLabel(l domain.Label) MutationResult {
	id, err := a.labels.Create(a.ctx, &l)
	if err != nil {
		wailsRuntime.LogErrorf(a.ctx, "[labels] create failed: %v", err)
		return MutationResult{Error: err.Error()}
	}
	return MutationResult{Success: true, NewID: id}
}

// UpdateLabel replaces a label.
func (a *App) UpdateLabel(l domain.Label) MutationResult {
	if err := a.labels.Update(a.ctx, &l); err != nil {
		wailsRuntime.LogErrorf(a.ctx, "[labels] update failed: %v", err)
		return MutationResult{Error: err.Error()}
	}
	return MutationResult{Success: true}
}

// DeleteLabel removes a label.
func (a *App) DeleteLabel(id string) MutationResult {
	if err := a.labels.Delete(a.ctx, id); err != nil {
		wailsRuntime.LogErrorf(a.ctx, "[labels] delete failed: %v", err)
		return MutationResult{Error: err.Error()}
	}
	return MutationResult{Success: true}
}
