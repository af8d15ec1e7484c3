// Package fsview renders directory trees for the file picker UI.
package fsview

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileNode is one entry in a directory tree.
type FileNode struct {
	Name        string     `json:"name"`
	Path        string     `json:"path"`
	IsDirectory bool       `json:"isDirectory"`
	Children    []FileNode `json:"children,omitempty"`
}

// ReadDirectoryStructure recursively reads the tree rooted at dirPath.
// Unreadable subdirectories become leaf nodes rather than errors.
func ReadDirectoryStructure(dirPath string) (*FileNode, error) {
	info, err := os.Stat(dirPath)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", dirPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dirPath)
	}

	return &FileNode{
		Name:        filepath.Base(dirPath),
		Path:        dirPath,
		IsDirectory: true,
		Children:    traverse(dirPath),
	}, nil
}

func traverse(dir string) []FileNode {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	nodes := make([]FileNode, 0, len(entries))
	for _, e := range entries {
		full := filepath.Join(dir, e.Name())
		node := FileNode{Name: e.Name(), Path: full, IsDirectory: e.IsDir()}
		if e.IsDir() {
			node.Children = traverse(full)
		}
		nodes = append(nodes, node)
	}
	return nodes
}
