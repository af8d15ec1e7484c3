package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipdeck/internal/domain"
	"clipdeck/internal/service"
	"clipdeck/internal/storage"
)

func newStores(t *testing.T) (*storage.BlockStore, *storage.BlockTypeStore) {
	t.Helper()
	db, err := storage.New(filepath.Join(t.TempDir(), "clipdeck.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewBlockStore(db), storage.NewBlockTypeStore(db)
}

func TestBlockService_CreateEmitsChange(t *testing.T) {
	blocks, types := newStores(t)
	emitter := &service.MockEmitter{}
	svc := service.NewBlockService(blocks, types, emitter)

	id, err := svc.Create(context.Background(), &domain.Block{Type: "clip"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.Len(t, emitter.Events, 1)
	assert.Equal(t, service.EventBlocksChanged, emitter.Events[0].Event)
	assert.Equal(t, id, emitter.Events[0].Data)
}

func TestBlockService_CreateAppliesSchemaDefaults(t *testing.T) {
	blocks, types := newStores(t)
	emitter := &service.MockEmitter{}
	typeSvc := service.NewBlockTypeService(types, emitter)

	_, err := typeSvc.Create(context.Background(), &domain.BlockType{
		Name: "snippet",
		PropertiesDefinition: []domain.FieldDefinition{
			{Key: "language", Label: "Language", Type: domain.FieldSelect, Options: []string{"go", "ts"}, DefaultValue: "go"},
			{Key: "text", Label: "Text", Type: domain.FieldTextarea},
		},
	})
	require.NoError(t, err)

	svc := service.NewBlockService(blocks, types, emitter)
	id, err := svc.Create(context.Background(), &domain.Block{
		Type:       "snippet",
		Properties: map[string]any{"text": "fmt.Println"},
	})
	require.NoError(t, err)

	got, err := svc.Get(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "go", got.Properties["language"]) // default applied
	assert.Equal(t, "fmt.Println", got.Properties["text"])

	// Caller-set values are never overwritten by defaults.
	id2, err := svc.Create(context.Background(), &domain.Block{
		Type:       "snippet",
		Properties: map[string]any{"language": "ts"},
	})
	require.NoError(t, err)
	got2, err := svc.Get(id2)
	require.NoError(t, err)
	assert.Equal(t, "ts", got2.Properties["language"])
}

func TestBlockService_DeleteLeavesReferences(t *testing.T) {
	blocks, types := newStores(t)
	svc := service.NewBlockService(blocks, types, &service.MockEmitter{})
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.Block{ID: "x", Type: "file_path"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &domain.Block{ID: "c", Type: "clip", Content: []string{"x"}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "x"))

	clip, err := svc.Get("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, clip.Content)
}

func TestBlockTypeService_CreateSortsFieldsByOrder(t *testing.T) {
	_, types := newStores(t)
	svc := service.NewBlockTypeService(types, &service.MockEmitter{})

	id, err := svc.Create(context.Background(), &domain.BlockType{
		Name: "file_path",
		PropertiesDefinition: []domain.FieldDefinition{
			{Key: "b", Order: 2},
			{Key: "a", Order: 1},
		},
	})
	require.NoError(t, err)

	got, err := svc.Get(id)
	require.NoError(t, err)
	require.Len(t, got.PropertiesDefinition, 2)
	assert.Equal(t, "a", got.PropertiesDefinition[0].Key)
	assert.Equal(t, "b", got.PropertiesDefinition[1].Key)
}
