package service

import (
	"context"
	"fmt"

	"clipdeck/internal/domain"
)

// LabelService manages the colored tags users attach to clips.
type LabelService struct {
	store   domain.LabelStore
	emitter EventEmitter
}

func NewLabelService(store domain.LabelStore, emitter EventEmitter) *LabelService {
	return &LabelService{store: store, emitter: emitter}
}

func (s *LabelService) List() ([]domain.Label, error) {
	return s.store.FindAll()
}

func (s *LabelService) Create(ctx context.Context, l *domain.Label) (string, error) {
	id, err := s.store.Create(l)
	if err != nil {
		return "", fmt.Errorf("create label: %w", err)
	}
	s.emitter.Emit(ctx, EventLabelsChanged, id)
	return id, nil
}

func (s *LabelService) Update(ctx context.Context, l *domain.Label) error {
	if err := s.store.Update(l); err != nil {
		return fmt.Errorf("update label: %w", err)
	}
	s.emitter.Emit(ctx, EventLabelsChanged, l.ID)
	return nil
}

func (s *LabelService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteByID(id); err != nil {
		return fmt.Errorf("delete label: %w", err)
	}
	s.emitter.Emit(ctx, EventLabelsChanged, id)
	return nil
}
