package app

import (
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"clipdeck/internal/fsview"
)

// ShowDirectoryDialog opens a native directory picker and returns the chosen path.
// An empty string means the user cancelled.
func (a *App) ShowDirectoryDialog() (string, error) {
	return wailsRuntime.OpenDirectoryDialog(a.ctx, wailsRuntime.OpenDialogOptions{
		Title: "Select Project Root",
	})
}

// ShowFileDialog opens a native multi-file picker and returns the chosen paths.
func (a *App) ShowFileDialog() ([]string, error) {
	return wailsRuntime.OpenMultipleFilesDialog(a.ctx, wailsRuntime.OpenDialogOptions{
		Title: "Select Files",
		Filters: []wailsRuntime.FileFilter{
			{DisplayName: "All Files", Pattern: "*.*"},
		},
	})
}

// ReadDirStructure walks a directory and returns its tree for the path picker.
func (a *App) ReadDirStructure(dirPath string) (*fsview.FileNode, error) {
	return fsview.ReadDirectoryStructure(dirPath)
}
