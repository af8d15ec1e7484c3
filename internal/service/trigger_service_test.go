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

// stubRunner records run calls and returns a fixed envelope.
type stubRunner struct {
	ran    []string
	result domain.RunResult
}

func (r *stubRunner) Run(_ context.Context, clipID string) (domain.RunResult, error) {
	r.ran = append(r.ran, clipID)
	return r.result, nil
}

func newTriggerFixture(t *testing.T) (*storage.BlockStore, *stubRunner, *service.MockRegistrar, *service.MockEmitter, *service.TriggerService) {
	t.Helper()
	db, err := storage.New(filepath.Join(t.TempDir(), "clipdeck.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	blocks := storage.NewBlockStore(db)
	runner := &stubRunner{result: domain.Success("Clip run done!")}
	registrar := service.NewMockRegistrar()
	emitter := &service.MockEmitter{}
	svc := service.NewTriggerService(blocks, runner, registrar, emitter)
	t.Cleanup(svc.Stop)
	return blocks, runner, registrar, emitter, svc
}

func TestTriggerService_SyncShortcutsRegistersClips(t *testing.T) {
	blocks, runner, registrar, emitter, svc := newTriggerFixture(t)
	ctx := context.Background()

	_, err := blocks.Create(&domain.Block{ID: "c1", Type: "clip", Properties: map[string]any{"shortcut": "Ctrl+Shift+1"}})
	require.NoError(t, err)
	_, err = blocks.Create(&domain.Block{ID: "c2", Type: "clip"}) // no shortcut
	require.NoError(t, err)
	_, err = blocks.Create(&domain.Block{ID: "a1", Type: "action", Properties: map[string]any{"shortcut": "Ctrl+Shift+2"}})
	require.NoError(t, err)

	svc.SyncShortcuts(ctx)

	// Only clip blocks with a shortcut property get registered.
	require.Len(t, registrar.Bindings, 1)

	registrar.Fire("Ctrl+Shift+1")
	assert.Equal(t, []string{"c1"}, runner.ran)

	// The run envelope is forwarded to the frontend.
	require.Len(t, emitter.Events, 1)
	assert.Equal(t, service.EventClipRunDone, emitter.Events[0].Event)
	assert.Equal(t, domain.Success("Clip run done!"), emitter.Events[0].Data)
}

func TestTriggerService_SyncShortcutsFirstClaimWins(t *testing.T) {
	blocks, runner, registrar, _, svc := newTriggerFixture(t)

	_, err := blocks.Create(&domain.Block{ID: "c1", Type: "clip", Properties: map[string]any{"shortcut": "Ctrl+C"}})
	require.NoError(t, err)
	_, err = blocks.Create(&domain.Block{ID: "c2", Type: "clip", Properties: map[string]any{"shortcut": "Ctrl+C"}})
	require.NoError(t, err)

	svc.SyncShortcuts(context.Background())

	require.Len(t, registrar.Bindings, 1)
	registrar.Fire("Ctrl+C")
	assert.Equal(t, []string{"c1"}, runner.ran)
}

func TestTriggerService_SyncShortcutsReplacesPreviousSet(t *testing.T) {
	blocks, _, registrar, _, svc := newTriggerFixture(t)
	ctx := context.Background()

	_, err := blocks.Create(&domain.Block{ID: "c1", Type: "clip", Properties: map[string]any{"shortcut": "Ctrl+1"}})
	require.NoError(t, err)
	svc.SyncShortcuts(ctx)
	require.Len(t, registrar.Bindings, 1)

	clip := &domain.Block{ID: "c1", Type: "clip", Properties: map[string]any{"shortcut": "Ctrl+2"}, Content: []string{}}
	require.NoError(t, blocks.Update(clip))
	svc.SyncShortcuts(ctx)

	assert.Len(t, registrar.Bindings, 1)
	_, hasOld := registrar.Bindings["Ctrl+1"]
	assert.False(t, hasOld)
	_, hasNew := registrar.Bindings["Ctrl+2"]
	assert.True(t, hasNew)
}

func TestTriggerService_RestartTriggersTolerateBadCron(t *testing.T) {
	blocks, _, _, _, svc := newTriggerFixture(t)

	_, err := blocks.Create(&domain.Block{ID: "c1", Type: "clip", Properties: map[string]any{"schedule": "not a cron expr"}})
	require.NoError(t, err)

	// Invalid expressions are logged and skipped, never fatal.
	svc.RestartTriggers(context.Background())
	svc.Stop()
}
