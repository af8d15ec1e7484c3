package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"clipdeck/internal/domain"
)

// BlockTypeStore implements domain.BlockTypeStore using SQLite, mirroring
// BlockStore's shape. No referential integrity toward blocks is enforced.
type BlockTypeStore struct {
	db *DB
}

func NewBlockTypeStore(db *DB) *BlockTypeStore {
	return &BlockTypeStore{db: db}
}

func (s *BlockTypeStore) FindAll() ([]domain.BlockType, error) {
	rows, err := s.db.Conn().Query(
		`SELECT id, name, properties_definition, created_at, updated_at FROM block_types ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.BlockType
	for rows.Next() {
		bt, err := scanBlockType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, *bt)
	}
	return types, rows.Err()
}

func (s *BlockTypeStore) FindByID(id string) (*domain.BlockType, error) {
	row := s.db.Conn().QueryRow(
		`SELECT id, name, properties_definition, created_at, updated_at FROM block_types WHERE id = ?`, id,
	)
	bt, err := scanBlockType(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get block type: %w", err)
	}
	return bt, nil
}

// Create persists a new block type. A blank id gets a generated one, a
// blank name defaults to "custom", and a nil definition list becomes
// empty. Returns the effective id.
func (s *BlockTypeStore) Create(bt *domain.BlockType) (string, error) {
	if strings.TrimSpace(bt.ID) == "" {
		bt.ID = uuid.New().String()
	}
	if bt.Name == "" {
		bt.Name = "custom"
	}
	if bt.PropertiesDefinition == nil {
		bt.PropertiesDefinition = []domain.FieldDefinition{}
	}

	defJSON, err := json.Marshal(bt.PropertiesDefinition)
	if err != nil {
		return "", fmt.Errorf("encode properties definition: %w", err)
	}

	now := time.Now()
	bt.CreatedAt = now
	bt.UpdatedAt = now

	_, err = s.db.Conn().Exec(
		`INSERT INTO block_types (id, name, properties_definition, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		bt.ID, bt.Name, string(defJSON), bt.CreatedAt, bt.UpdatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("create block type: %w", err)
	}
	return bt.ID, nil
}

func (s *BlockTypeStore) Update(bt *domain.BlockType) error {
	defJSON, err := json.Marshal(bt.PropertiesDefinition)
	if err != nil {
		return fmt.Errorf("encode properties definition: %w", err)
	}

	bt.UpdatedAt = time.Now()
	_, err = s.db.Conn().Exec(
		`UPDATE block_types SET name = ?, properties_definition = ?, updated_at = ? WHERE id = ?`,
		bt.Name, string(defJSON), bt.UpdatedAt, bt.ID,
	)
	return err
}

func (s *BlockTypeStore) DeleteByID(id string) error {
	_, err := s.db.Conn().Exec(`DELETE FROM block_types WHERE id = ?`, id)
	return err
}

func scanBlockType(row scanner) (*domain.BlockType, error) {
	var (
		bt      domain.BlockType
		defJSON string
	)
	if err := row.Scan(&bt.ID, &bt.Name, &defJSON, &bt.CreatedAt, &bt.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(defJSON), &bt.PropertiesDefinition); err != nil {
		return nil, fmt.Errorf("decode properties definition of block type %s: %w", bt.ID, err)
	}
	return &bt, nil
}
