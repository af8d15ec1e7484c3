package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"clipdeck/internal/domain"
)

// LabelStore implements domain.LabelStore using SQLite.
type LabelStore struct {
	db *DB
}

func NewLabelStore(db *DB) *LabelStore {
	return &LabelStore{db: db}
}

func (s *LabelStore) FindAll() ([]domain.Label, error) {
	rows, err := s.db.Conn().Query(
		`SELECT id, name, color, created_at, updated_at FROM labels ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []domain.Label
	for rows.Next() {
		var l domain.Label
		if err := rows.Scan(&l.ID, &l.Name, &l.Color, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		labels = append(labels, l)
	}
	return labels, rows.Err()
}

func (s *LabelStore) Create(l *domain.Label) (string, error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	now := time.Now()
	l.CreatedAt = now
	l.UpdatedAt = now

	_, err := s.db.Conn().Exec(
		`INSERT INTO labels (id, name, color, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		l.ID, l.Name, l.Color, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("create label: %w", err)
	}
	return l.ID, nil
}

func (s *LabelStore) Update(l *domain.Label) error {
	l.UpdatedAt = time.Now()
	_, err := s.db.Conn().Exec(
		`UPDATE labels SET name = ?, color = ?, updated_at = ? WHERE id = ?`,
		l.Name, l.Color, l.UpdatedAt, l.ID,
	)
	return err
}

func (s *LabelStore) DeleteByID(id string) error {
	_, err := s.db.Conn().Exec(`DELETE FROM labels WHERE id = ?`, id)
	return err
}
