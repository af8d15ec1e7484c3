package scripthost_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipdeck/internal/domain"
	"clipdeck/internal/engine"
	"clipdeck/internal/scripthost"
)

func shellContext() engine.ScriptContext {
	return engine.ScriptContext{
		Clip: domain.Block{ID: "c1", Type: "clip", Properties: map[string]any{}},
		Children: []domain.Block{
			{ID: "a1", Type: "action", Properties: map[string]any{}},
		},
	}
}

func TestShellHost_RunSucceeds(t *testing.T) {
	host := scripthost.NewShellHost("/bin/sh")
	err := host.Run(context.Background(), "true", shellContext())
	assert.NoError(t, err)
}

func TestShellHost_NonZeroExitIsAnError(t *testing.T) {
	host := scripthost.NewShellHost("/bin/sh")
	err := host.Run(context.Background(), "echo boom >&2; exit 3", shellContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestShellHost_ClipContextInEnvironment(t *testing.T) {
	host := scripthost.NewShellHost("/bin/sh")
	// Fails unless both context variables are present and name the clip.
	script := `test -n "$CLIPDECK_CHILDREN" && echo "$CLIPDECK_CLIP" | grep -q '"id":"c1"'`
	err := host.Run(context.Background(), script, shellContext())
	assert.NoError(t, err)
}

func TestDisabled_AlwaysFails(t *testing.T) {
	err := scripthost.Disabled{}.Run(context.Background(), "true", shellContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disabled")
}
