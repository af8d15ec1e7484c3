package engine

import (
	"context"
	"fmt"
	"strings"

	"clipdeck/internal/domain"
)

// Clipboard is the clipboard-write capability granted to built-in actions.
// The app layer implements it over the Wails runtime; tests use a spy.
type Clipboard interface {
	WriteText(text string) error
}

// ScriptContext is what a user-supplied script gets to see at run time.
type ScriptContext struct {
	Clip     domain.Block
	Children []domain.Block
}

// ScriptHost executes user-supplied action code. Implementations range
// from Disabled to a shell runner; the engine only knows this contract.
type ScriptHost interface {
	Run(ctx context.Context, source string, sc ScriptContext) error
}

// Runner resolves a clip's children, validates the action's declared
// preconditions and dispatches to either a built-in behavior or the
// script host. One Run call is strictly sequential; concurrent Run calls
// for the same clip are not serialized.
type Runner struct {
	blocks    domain.BlockStore
	clipboard Clipboard
	scripts   ScriptHost
}

func New(blocks domain.BlockStore, clipboard Clipboard, scripts ScriptHost) *Runner {
	return &Runner{blocks: blocks, clipboard: clipboard, scripts: scripts}
}

// Run executes the clip with the given id and reports the uniform result
// envelope. Expected domain failures (not a clip, missing action block,
// missing required types, script errors) come back as {Error:true};
// only storage failures are returned as a Go error.
func (r *Runner) Run(ctx context.Context, clipID string) (domain.RunResult, error) {
	clip, err := r.blocks.FindByID(clipID)
	if err != nil {
		return domain.RunResult{}, err
	}
	if clip == nil || clip.Type != domain.BlockTypeClip {
		return domain.Failure("Not a clip block. Cannot run."), nil
	}

	children, err := r.resolveChildren(clip)
	if err != nil {
		return domain.RunResult{}, err
	}

	action := firstOfType(children, domain.BlockTypeAction)
	if action == nil {
		return domain.Failure("Missing an action block in this clip."), nil
	}

	if missing := missingRequiredTypes(action, children); len(missing) > 0 {
		return domain.Failure("Missing required blocks: " + strings.Join(missing, ", ")), nil
	}

	if code := action.Code(); code != "" {
		if err := r.scripts.Run(ctx, code, ScriptContext{Clip: *clip, Children: children}); err != nil {
			return domain.Failure("Error executing action code: " + err.Error()), nil
		}
		return domain.Success("Clip run done!"), nil
	}

	if res, handled := r.runBuiltin(action, children); handled {
		return res, nil
	}
	return domain.Failure("No action code defined in this action block."), nil
}

// resolveChildren loads every stored block and keeps the ones the clip
// references. Dangling ids in content are filtered out here, never
// reported — deletes do not clean references by design.
func (r *Runner) resolveChildren(clip *domain.Block) ([]domain.Block, error) {
	all, err := r.blocks.FindAll()
	if err != nil {
		return nil, fmt.Errorf("resolve children of clip %s: %w", clip.ID, err)
	}

	wanted := make(map[string]bool, len(clip.Content))
	for _, id := range clip.Content {
		wanted[id] = true
	}

	var children []domain.Block
	for _, b := range all {
		if wanted[b.ID] {
			children = append(children, b)
		}
	}
	return children, nil
}

// missingRequiredTypes checks the action's declared required block types
// against the resolved children. Pure set membership: at least one child
// per required type name, duplicates indistinct, property shape not
// inspected (an empty-paths selected_path block still counts).
func missingRequiredTypes(action *domain.Block, children []domain.Block) []string {
	present := make(map[string]bool, len(children))
	for _, c := range children {
		present[c.Type] = true
	}

	var missing []string
	for _, want := range action.RequiredBlockTypes() {
		if !present[want] {
			missing = append(missing, want)
		}
	}
	return missing
}

func firstOfType(blocks []domain.Block, blockType string) *domain.Block {
	for i := range blocks {
		if blocks[i].Type == blockType {
			return &blocks[i]
		}
	}
	return nil
}
