package engine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"clipdeck/internal/domain"
)

func TestFindCommonRoot(t *testing.T) {
	sep := string(filepath.Separator)
	join := func(parts ...string) string { return sep + filepath.Join(parts...) }

	assert.Equal(t, join("home", "me", "proj"), findCommonRoot([]string{
		join("home", "me", "proj", "src", "a.go"),
		join("home", "me", "proj", "README.md"),
	}))

	// A single path is its own root.
	assert.Equal(t, join("tmp", "x"), findCommonRoot([]string{join("tmp", "x")}))

	// Nothing shared → working directory fallback.
	cwd, _ := filepath.Abs(".")
	assert.Equal(t, cwd, findCommonRoot(nil))
}

func TestSelectedPaths_MergesAllSelectedPathChildren(t *testing.T) {
	children := []domain.Block{
		{Type: "selected_path", Properties: map[string]any{"paths": []any{"/a"}}},
		{Type: "file_path", Properties: map[string]any{"paths": []any{"/ignored"}}},
		{Type: "selected_path", Properties: map[string]any{"paths": []any{"/b", "/c"}}},
	}
	assert.Equal(t, []string{"/a", "/b", "/c"}, selectedPaths(children))
}
