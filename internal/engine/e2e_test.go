package engine_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipdeck/internal/domain"
	"clipdeck/internal/engine"
	"clipdeck/internal/storage"
)

// End-to-end copy scenario over a real SQLite store: build a clip out of
// an action, a project_root and a selected_path block through ordinary
// store calls, run it, and check the clipboard payload.
func TestRun_EndToEndCopy(t *testing.T) {
	db, err := storage.New(filepath.Join(t.TempDir(), "clipdeck.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	store := storage.NewBlockStore(db)

	_, err = store.Create(&domain.Block{ID: "c1", Type: "clip", Content: []string{}})
	require.NoError(t, err)
	_, err = store.Create(&domain.Block{ID: "a1", Type: "action", Properties: map[string]any{"actionType": "copy"}})
	require.NoError(t, err)

	clip, err := store.FindByID("c1")
	require.NoError(t, err)
	clip.Content = []string{"a1"}
	require.NoError(t, store.Update(clip))

	_, err = store.Create(&domain.Block{ID: "p1", Type: "project_root", Properties: map[string]any{}})
	require.NoError(t, err)
	_, err = store.Create(&domain.Block{ID: "s1", Type: "selected_path", Properties: map[string]any{
		"paths": []any{"/tmp/x"},
	}})
	require.NoError(t, err)

	clip, err = store.FindByID("c1")
	require.NoError(t, err)
	clip.Content = append(clip.Content, "p1", "s1")
	require.NoError(t, store.Update(clip))

	cb := &clipboardSpy{}
	r := engine.New(store, cb, &scriptSpy{})

	res, err := r.Run(context.Background(), "c1")
	require.NoError(t, err)
	assert.False(t, res.Error)
	assert.Equal(t, "Clip run done!", res.Message)
	require.Len(t, cb.texts, 1)
	assert.Contains(t, cb.texts[0], "/tmp/x")
}
