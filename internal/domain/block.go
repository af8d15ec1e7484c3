package domain

import (
	"strings"
	"time"
)

// Reserved block type tags. Every other value of Block.Type is a
// user-defined category (e.g. "snippet", "file_path").
const (
	BlockTypeClip   = "clip"
	BlockTypeAction = "action"

	// Conventional child types consumed by the built-in copy action.
	BlockTypeProjectRoot  = "project_root"
	BlockTypeSelectedPath = "selected_path"
)

// Built-in action behaviors selectable on an action block.
const (
	ActionCopy       = "copy"
	ActionTxtExtract = "txtExtract"
)

// Block is a generic persisted tree node: a type tag, an open property
// bag, and an ordered list of child block ids. Children are referenced
// by id only — ids may dangle after deletes and readers must filter.
type Block struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Content    []string       `json:"content"` // child block ids
	Parent     string         `json:"parent,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// StringProp returns the named property when it is a string.
func (b *Block) StringProp(key string) string {
	if v, ok := b.Properties[key].(string); ok {
		return v
	}
	return ""
}

// StringSliceProp returns the named property coerced to a string slice.
// Properties survive a JSON round-trip, so arrays arrive as []any.
func (b *Block) StringSliceProp(key string) []string {
	switch v := b.Properties[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// BoolProp returns the named property when it is a bool.
func (b *Block) BoolProp(key string) bool {
	v, _ := b.Properties[key].(bool)
	return v
}

// ActionType returns the built-in behavior selected on an action block,
// defaulting to copy when absent.
func (b *Block) ActionType() string {
	if t := b.StringProp("actionType"); t != "" {
		return t
	}
	return ActionCopy
}

// Code returns the user-supplied script source of an action block, or ""
// when none is defined. Whitespace-only code counts as absent.
func (b *Block) Code() string {
	code := b.StringProp("code")
	if strings.TrimSpace(code) == "" {
		return ""
	}
	return code
}

// RequiredBlockTypes returns the child block types an action declares as
// preconditions. When no explicit list is set and the action is the
// built-in copy, the historical default set applies.
func (b *Block) RequiredBlockTypes() []string {
	if _, declared := b.Properties["requiredBlockTypes"]; declared {
		return b.StringSliceProp("requiredBlockTypes")
	}
	if b.ActionType() == ActionCopy {
		return []string{BlockTypeProjectRoot, BlockTypeSelectedPath}
	}
	return nil
}

// Shortcut returns the global accelerator bound to a clip, if any.
func (b *Block) Shortcut() string { return b.StringProp("shortcut") }

// Schedule returns the cron expression bound to a clip, if any.
func (b *Block) Schedule() string { return b.StringProp("schedule") }

// WatchPaths returns the filesystem paths whose changes trigger a clip.
func (b *Block) WatchPaths() []string { return b.StringSliceProp("watchPaths") }

// BlockStore is durable CRUD for blocks.
type BlockStore interface {
	FindAll() ([]Block, error)
	FindByID(id string) (*Block, error)
	Create(b *Block) (string, error)
	Update(b *Block) error
	DeleteByID(id string) error
}
