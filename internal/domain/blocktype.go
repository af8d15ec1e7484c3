package domain

import "time"

// Field kinds a BlockType definition may use.
const (
	FieldText     = "text"
	FieldTextarea = "textarea"
	FieldNumber   = "number"
	FieldCheckbox = "checkbox"
	FieldSelect   = "select"
)

// FieldDefinition describes a single editable property of a block type.
type FieldDefinition struct {
	Key          string   `json:"key"`
	Label        string   `json:"label"`
	Type         string   `json:"type"` // one of the Field* kinds
	Options      []string `json:"options,omitempty"`
	Order        int      `json:"order"`
	DefaultValue any      `json:"defaultValue,omitempty"`
}

// BlockType is a user-editable schema for one block type string. Name
// matches Block.Type by value — it is advisory metadata for editing UIs,
// not a constraint: renaming or deleting a BlockType never touches the
// blocks that carry its name.
type BlockType struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	PropertiesDefinition []FieldDefinition `json:"propertiesDefinition"`
	CreatedAt            time.Time         `json:"createdAt"`
	UpdatedAt            time.Time         `json:"updatedAt"`
}

// BlockTypeStore is durable CRUD for block type definitions.
type BlockTypeStore interface {
	FindAll() ([]BlockType, error)
	FindByID(id string) (*BlockType, error)
	Create(bt *BlockType) (string, error)
	Update(bt *BlockType) error
	DeleteByID(id string) error
}
