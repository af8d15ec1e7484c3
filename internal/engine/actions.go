package engine

import (
	"os"
	"path/filepath"
	"strings"

	"clipdeck/internal/domain"
)

// runBuiltin dispatches an action block with no script code to the
// behavior named by its actionType. The second return is false when the
// action type is not a known built-in.
func (r *Runner) runBuiltin(action *domain.Block, children []domain.Block) (domain.RunResult, bool) {
	switch action.ActionType() {
	case domain.ActionCopy:
		return r.runCopy(children), true
	case domain.ActionTxtExtract:
		return r.runTxtExtract(children), true
	default:
		return domain.RunResult{}, false
	}
}

// runCopy bundles the referenced project files into one text payload and
// writes it to the clipboard. The project root comes from the clip's
// project_root child; when that block carries no path, the common root
// of the selected paths is used instead.
func (r *Runner) runCopy(children []domain.Block) domain.RunResult {
	root := ""
	if rb := firstOfType(children, domain.BlockTypeProjectRoot); rb != nil {
		root = rb.StringProp("path")
	}

	paths := selectedPaths(children)
	if root == "" {
		root = findCommonRoot(paths)
	}

	text := GatherForClipboard(root, paths)
	if err := r.clipboard.WriteText(text); err != nil {
		return domain.Failure("Error executing action: " + err.Error())
	}
	return domain.Success("Clip run done!")
}

// runTxtExtract writes a plain textual transform of the selected paths.
func (r *Runner) runTxtExtract(children []domain.Block) domain.RunResult {
	paths := selectedPaths(children)
	lines := make([]string, 0, len(paths))
	for _, p := range paths {
		lines = append(lines, p+" (extracted)")
	}
	if err := r.clipboard.WriteText(strings.Join(lines, "\n")); err != nil {
		return domain.Failure("Error executing action: " + err.Error())
	}
	return domain.Success("Clip run done!")
}

// selectedPaths collects the paths property of every selected_path child.
func selectedPaths(children []domain.Block) []string {
	var paths []string
	for i := range children {
		if children[i].Type == domain.BlockTypeSelectedPath {
			paths = append(paths, children[i].StringSliceProp("paths")...)
		}
	}
	return paths
}

// findCommonRoot returns the longest common path prefix of the given
// paths, falling back to the working directory when nothing is shared.
func findCommonRoot(paths []string) string {
	cwd, _ := os.Getwd()
	if len(paths) == 0 {
		return cwd
	}

	sep := string(filepath.Separator)
	parts := strings.Split(filepath.Clean(paths[0]), sep)
	for _, p := range paths[1:] {
		other := strings.Split(filepath.Clean(p), sep)
		j := 0
		for j < len(parts) && j < len(other) && parts[j] == other[j] {
			j++
		}
		parts = parts[:j]
	}

	root := strings.Join(parts, sep)
	if root == "" {
		return cwd
	}
	return root
}
