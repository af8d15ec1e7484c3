package engine

import (
	"os"
	"path/filepath"
	"strings"
)

// Directories skipped when rendering the project tree.
var skippedDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
	".git":         true,
	".idea":        true,
}

// GatherForClipboard renders the textual bundle the built-in copy action
// puts on the clipboard: the project tree under root, followed by each
// selected file with a header line. Unreadable or missing files keep
// their header so the payload always names every selected path.
func GatherForClipboard(root string, paths []string) string {
	var sb strings.Builder

	sb.WriteString("# Project structure:\n")
	if info, err := os.Stat(root); err == nil && info.IsDir() {
		sb.WriteString(filepath.Base(root) + "/\n")
		writeTree(&sb, root, 1)
	} else {
		sb.WriteString(root + "\n")
	}
	sb.WriteString("\n")

	if len(paths) > 0 {
		sb.WriteString("# Files:\n")
		for _, p := range paths {
			sb.WriteString("# File: " + p + "\n")
			if data, err := os.ReadFile(p); err == nil {
				sb.Write(data)
				if len(data) > 0 && data[len(data)-1] != '\n' {
					sb.WriteString("\n")
				}
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func writeTree(sb *strings.Builder, dir string, depth int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	indent := strings.Repeat("  ", depth)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			if skippedDirs[name] || strings.HasPrefix(name, ".") {
				continue
			}
			sb.WriteString(indent + name + "/\n")
			writeTree(sb, filepath.Join(dir, name), depth+1)
		} else {
			sb.WriteString(indent + name + "\n")
		}
	}
}
