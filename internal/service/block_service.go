package service

import (
	"context"
	"fmt"

	"clipdeck/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Block Service — business logic for blocks
// ─────────────────────────────────────────────────────────────

// BlockService manages the lifecycle of blocks on top of the store.
type BlockService struct {
	store   domain.BlockStore
	types   domain.BlockTypeStore
	emitter EventEmitter
}

// NewBlockService creates a BlockService.
func NewBlockService(store domain.BlockStore, types domain.BlockTypeStore, emitter EventEmitter) *BlockService {
	return &BlockService{store: store, types: types, emitter: emitter}
}

// List returns every block, ordered by creation time.
func (s *BlockService) List() ([]domain.Block, error) {
	return s.store.FindAll()
}

// Get returns a block by id, nil when absent.
func (s *BlockService) Get(id string) (*domain.Block, error) {
	return s.store.FindByID(id)
}

// Create persists a partial block. When a BlockType matching the block's
// type exists, field defaults from its definition are applied to
// properties the caller did not set — the schema stays advisory, so this
// is the only place it influences block data.
func (s *BlockService) Create(ctx context.Context, b *domain.Block) (string, error) {
	if err := s.applyTypeDefaults(b); err != nil {
		return "", err
	}
	id, err := s.store.Create(b)
	if err != nil {
		return "", fmt.Errorf("create block: %w", err)
	}
	s.emitter.Emit(ctx, EventBlocksChanged, id)
	return id, nil
}

// Update replaces an existing block record.
func (s *BlockService) Update(ctx context.Context, b *domain.Block) error {
	if err := s.store.Update(b); err != nil {
		return fmt.Errorf("update block: %w", err)
	}
	s.emitter.Emit(ctx, EventBlocksChanged, b.ID)
	return nil
}

// Delete removes one block. Content references held by other blocks are
// left dangling on purpose.
func (s *BlockService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteByID(id); err != nil {
		return fmt.Errorf("delete block: %w", err)
	}
	s.emitter.Emit(ctx, EventBlocksChanged, id)
	return nil
}

func (s *BlockService) applyTypeDefaults(b *domain.Block) error {
	if b.Type == "" || s.types == nil {
		return nil
	}
	types, err := s.types.FindAll()
	if err != nil {
		return fmt.Errorf("load block types: %w", err)
	}
	for _, bt := range types {
		if bt.Name != b.Type {
			continue
		}
		for _, field := range bt.PropertiesDefinition {
			if field.DefaultValue == nil {
				continue
			}
			if b.Properties == nil {
				b.Properties = map[string]any{}
			}
			if _, set := b.Properties[field.Key]; !set {
				b.Properties[field.Key] = field.DefaultValue
			}
		}
		break
	}
	return nil
}
