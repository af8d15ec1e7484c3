package engine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipdeck/internal/engine"
)

func TestGatherForClipboard(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules", "junk"), 0755))
	file := filepath.Join(root, "src", "main.go")
	require.NoError(t, os.WriteFile(file, []byte("package main\n"), 0644))

	out := engine.GatherForClipboard(root, []string{file, "/does/not/exist"})

	assert.Contains(t, out, "# Project structure:")
	assert.Contains(t, out, "src/")
	assert.Contains(t, out, "main.go")
	assert.NotContains(t, out, "node_modules")

	// Selected files: content for readable paths, bare header otherwise.
	assert.Contains(t, out, "# File: "+file)
	assert.Contains(t, out, "package main")
	assert.Contains(t, out, "# File: /does/not/exist")
}

func TestGatherForClipboard_RootNotADirectory(t *testing.T) {
	out := engine.GatherForClipboard("/nope/nothing", []string{"/tmp/x"})
	assert.Contains(t, out, "/nope/nothing")
	assert.Contains(t, out, "# File: /tmp/x")
}
