package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"clipdeck/internal/domain"
)

// BlockStore implements domain.BlockStore using SQLite. The variable-shaped
// fields (properties, content) are stored as JSON text in flat columns.
type BlockStore struct {
	db *DB
}

func NewBlockStore(db *DB) *BlockStore {
	return &BlockStore{db: db}
}

// FindAll returns every stored block, ordered by creation time ascending.
func (s *BlockStore) FindAll() ([]domain.Block, error) {
	rows, err := s.db.Conn().Query(
		`SELECT id, type, properties, content, parent, created_at, updated_at FROM blocks ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocks []domain.Block
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, *b)
	}
	return blocks, rows.Err()
}

// FindByID returns the block with the given id, or nil when absent.
// Absence is not an error.
func (s *BlockStore) FindByID(id string) (*domain.Block, error) {
	row := s.db.Conn().QueryRow(
		`SELECT id, type, properties, content, parent, created_at, updated_at FROM blocks WHERE id = ?`, id,
	)
	b, err := scanBlock(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get block: %w", err)
	}
	return b, nil
}

// Create persists a new block, filling in defaults for missing fields:
// a generated id, type "clip", empty properties and content. Both
// timestamps are stamped to now. Returns the effective id.
func (s *BlockStore) Create(b *domain.Block) (string, error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.Type == "" {
		b.Type = domain.BlockTypeClip
	}
	if b.Properties == nil {
		b.Properties = map[string]any{}
	}
	if b.Content == nil {
		b.Content = []string{}
	}

	propsJSON, err := json.Marshal(b.Properties)
	if err != nil {
		return "", fmt.Errorf("encode properties: %w", err)
	}
	contentJSON, err := json.Marshal(b.Content)
	if err != nil {
		return "", fmt.Errorf("encode content: %w", err)
	}

	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	_, err = s.db.Conn().Exec(
		`INSERT INTO blocks (id, type, properties, content, parent, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Type, string(propsJSON), string(contentJSON), nullable(b.Parent), b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("create block: %w", err)
	}
	return b.ID, nil
}

// Update replaces type, properties, content and parent of an existing
// block and re-stamps updated_at. created_at is left untouched. Callers
// merge partial patches into the full record before calling; two
// concurrent updates from stale reads are last-write-wins.
func (s *BlockStore) Update(b *domain.Block) error {
	propsJSON, err := json.Marshal(b.Properties)
	if err != nil {
		return fmt.Errorf("encode properties: %w", err)
	}
	contentJSON, err := json.Marshal(b.Content)
	if err != nil {
		return fmt.Errorf("encode content: %w", err)
	}

	b.UpdatedAt = time.Now()
	_, err = s.db.Conn().Exec(
		`UPDATE blocks SET type = ?, properties = ?, content = ?, parent = ?, updated_at = ? WHERE id = ?`,
		b.Type, string(propsJSON), string(contentJSON), nullable(b.Parent), b.UpdatedAt, b.ID,
	)
	return err
}

// DeleteByID removes exactly one row. No cascade: child ids referenced
// by other blocks' content are left dangling on purpose.
func (s *BlockStore) DeleteByID(id string) error {
	_, err := s.db.Conn().Exec(`DELETE FROM blocks WHERE id = ?`, id)
	return err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBlock(row scanner) (*domain.Block, error) {
	var (
		b           domain.Block
		propsJSON   string
		contentJSON string
		parent      sql.NullString
	)
	if err := row.Scan(&b.ID, &b.Type, &propsJSON, &contentJSON, &parent, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(propsJSON), &b.Properties); err != nil {
		return nil, fmt.Errorf("decode properties of block %s: %w", b.ID, err)
	}
	if err := json.Unmarshal([]byte(contentJSON), &b.Content); err != nil {
		return nil, fmt.Errorf("decode content of block %s: %w", b.ID, err)
	}
	b.Parent = parent.String
	return &b, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
