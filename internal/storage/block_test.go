package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipdeck/internal/domain"
	"clipdeck/internal/storage"
)

func newTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.New(filepath.Join(t.TempDir(), "clipdeck.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestBlockStore_RoundTrip(t *testing.T) {
	store := storage.NewBlockStore(newTestDB(t))

	in := &domain.Block{
		Type: "file_path",
		Properties: map[string]any{
			"paths":  []any{"/tmp/a", "/tmp/b"},
			"pinned": true,
			"weight": float64(3),
		},
		Content: []string{"child-1", "child-2"},
		Parent:  "parent-1",
	}
	id, err := store.Create(in)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.FindByID(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "file_path", got.Type)
	assert.Equal(t, in.Properties, got.Properties)
	assert.Equal(t, []string{"child-1", "child-2"}, got.Content)
	assert.Equal(t, "parent-1", got.Parent)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestBlockStore_CreateDefaults(t *testing.T) {
	store := storage.NewBlockStore(newTestDB(t))

	id, err := store.Create(&domain.Block{})
	require.NoError(t, err)

	got, err := store.FindByID(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.BlockTypeClip, got.Type)
	assert.Equal(t, map[string]any{}, got.Properties)
	assert.Equal(t, []string{}, got.Content)
	assert.Empty(t, got.Parent)
}

func TestBlockStore_CreateEchoesCallerID(t *testing.T) {
	store := storage.NewBlockStore(newTestDB(t))

	id, err := store.Create(&domain.Block{ID: "my-id", Type: "action"})
	require.NoError(t, err)
	assert.Equal(t, "my-id", id)
}

func TestBlockStore_FindByIDAbsentIsNotAnError(t *testing.T) {
	store := storage.NewBlockStore(newTestDB(t))

	got, err := store.FindByID("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBlockStore_FindAllOrderedByCreation(t *testing.T) {
	store := storage.NewBlockStore(newTestDB(t))

	for _, id := range []string{"a", "b", "c"} {
		_, err := store.Create(&domain.Block{ID: id})
		require.NoError(t, err)
	}

	all, err := store.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, "c", all[2].ID)
}

func TestBlockStore_UpdateReplacesRecord(t *testing.T) {
	store := storage.NewBlockStore(newTestDB(t))

	id, err := store.Create(&domain.Block{Type: "clip"})
	require.NoError(t, err)

	b, err := store.FindByID(id)
	require.NoError(t, err)
	created := b.CreatedAt

	b.Type = "clip"
	b.Properties = map[string]any{"shortcut": "Ctrl+Shift+C"}
	b.Content = []string{"a1"}
	b.Parent = "root"
	require.NoError(t, store.Update(b))

	got, err := store.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"shortcut": "Ctrl+Shift+C"}, got.Properties)
	assert.Equal(t, []string{"a1"}, got.Content)
	assert.Equal(t, "root", got.Parent)
	assert.Equal(t, created.Unix(), got.CreatedAt.Unix())
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestBlockStore_DeleteDoesNotCascade(t *testing.T) {
	store := storage.NewBlockStore(newTestDB(t))

	_, err := store.Create(&domain.Block{ID: "x", Type: "file_path"})
	require.NoError(t, err)
	_, err = store.Create(&domain.Block{ID: "c", Type: "clip", Content: []string{"x"}})
	require.NoError(t, err)

	require.NoError(t, store.DeleteByID("x"))

	gone, err := store.FindByID("x")
	require.NoError(t, err)
	assert.Nil(t, gone)

	// The clip still references the dangling id; readers must filter.
	clip, err := store.FindByID("c")
	require.NoError(t, err)
	require.NotNil(t, clip)
	assert.Equal(t, []string{"x"}, clip.Content)
}

func TestBlockStore_DecodeFailureIsAnError(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewBlockStore(db)

	_, err := db.Conn().Exec(
		`INSERT INTO blocks (id, type, properties, content) VALUES ('bad', 'clip', '{not json', '[]')`,
	)
	require.NoError(t, err)

	_, err = store.FindByID("bad")
	assert.Error(t, err)

	_, err = store.FindAll()
	assert.Error(t, err)
}
