package fsview_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipdeck/internal/fsview"
)

func TestReadDirectoryStructure(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "f.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "top.txt"), []byte("y"), 0644))

	node, err := fsview.ReadDirectoryStructure(root)
	require.NoError(t, err)
	assert.True(t, node.IsDirectory)
	require.Len(t, node.Children, 2)

	byName := map[string]fsview.FileNode{}
	for _, c := range node.Children {
		byName[c.Name] = c
	}
	assert.True(t, byName["sub"].IsDirectory)
	require.Len(t, byName["sub"].Children, 1)
	assert.Equal(t, "f.txt", byName["sub"].Children[0].Name)
	assert.False(t, byName["top.txt"].IsDirectory)
}

func TestReadDirectoryStructure_RejectsFiles(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := fsview.ReadDirectoryStructure(file)
	assert.Error(t, err)

	_, err = fsview.ReadDirectoryStructure(filepath.Join(root, "missing"))
	assert.Error(t, err)
}
