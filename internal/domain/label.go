package domain

import "time"

// Label is a colored tag users attach to clips for organizing the UI.
type Label struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"` // ex. "#FF0000"
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LabelStore is durable CRUD for labels.
type LabelStore interface {
	FindAll() ([]Label, error)
	Create(l *Label) (string, error)
	Update(l *Label) error
	DeleteByID(id string) error
}
