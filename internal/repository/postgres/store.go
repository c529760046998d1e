package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"notekeeper/internal/domain"
)

// documentID is the fixed primary key of the single document row. The whole
// workspace lives in one JSONB value so Save stays an atomic get/set, same as
// the file store.
const documentID = 1

// Store persists the document in a single JSONB row.
type Store struct {
	DB *sql.DB
}

// NewStore returns a document store backed by the given database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

// Open connects to Postgres at the given URL and verifies the connection.
func Open(url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Init creates the documents table when it does not exist yet.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			id         integer PRIMARY KEY,
			doc        jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("create documents table: %w", err)
	}
	return nil
}

// Load reads the document row. An absent row yields the empty document.
func (s *Store) Load(ctx context.Context) (*domain.Document, error) {
	var raw []byte
	err := s.DB.QueryRowContext(ctx, `SELECT doc FROM documents WHERE id = $1`, documentID).Scan(&raw)
	if err == sql.ErrNoRows {
		return domain.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	doc.Normalize()
	return &doc, nil
}

// Save upserts the document row.
func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO documents (id, doc, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		documentID, b)
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}
