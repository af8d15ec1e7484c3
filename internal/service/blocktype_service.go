package service

import (
	"context"
	"fmt"
	"sort"

	"clipdeck/internal/domain"
)

// BlockTypeService manages user-defined block type schemas.
type BlockTypeService struct {
	store   domain.BlockTypeStore
	emitter EventEmitter
}

func NewBlockTypeService(store domain.BlockTypeStore, emitter EventEmitter) *BlockTypeService {
	return &BlockTypeService{store: store, emitter: emitter}
}

func (s *BlockTypeService) List() ([]domain.BlockType, error) {
	return s.store.FindAll()
}

func (s *BlockTypeService) Get(id string) (*domain.BlockType, error) {
	return s.store.FindByID(id)
}

// Create persists a partial block type. Field definitions are kept in
// display order so editing UIs can render them as stored.
func (s *BlockTypeService) Create(ctx context.Context, bt *domain.BlockType) (string, error) {
	sortFields(bt)
	id, err := s.store.Create(bt)
	if err != nil {
		return "", fmt.Errorf("create block type: %w", err)
	}
	s.emitter.Emit(ctx, EventBlockTypesChanged, id)
	return id, nil
}

func (s *BlockTypeService) Update(ctx context.Context, bt *domain.BlockType) error {
	sortFields(bt)
	if err := s.store.Update(bt); err != nil {
		return fmt.Errorf("update block type: %w", err)
	}
	s.emitter.Emit(ctx, EventBlockTypesChanged, bt.ID)
	return nil
}

// Delete removes a schema. Blocks carrying the schema's name keep their
// type string — the relationship is by value, not reference.
func (s *BlockTypeService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteByID(id); err != nil {
		return fmt.Errorf("delete block type: %w", err)
	}
	s.emitter.Emit(ctx, EventBlockTypesChanged, id)
	return nil
}

func sortFields(bt *domain.BlockType) {
	sort.SliceStable(bt.PropertiesDefinition, func(i, j int) bool {
		return bt.PropertiesDefinition[i].Order < bt.PropertiesDefinition[j].Order
	})
}
