package storage

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/vitaalplan/vitaal-api/internal/logger"
)

// PostgresStore keeps every document as a row in a single JSONB table.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates a PostgresStore over an open connection.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Schema creates the documents table if it does not exist.
const Schema = `
CREATE TABLE IF NOT EXISTS documents (
	key TEXT PRIMARY KEY,
	doc JSONB NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);
`

// Migrate applies the documents schema.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, Schema)
	return err
}

// Get returns the document stored under key, or (nil, nil) if absent.
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT doc FROM documents WHERE key = $1`

	var doc []byte
	err := s.db.GetContext(ctx, &doc, query, key)

	logger.Log.Infow("doc store get",
		"query", strings.Join(strings.Fields(query), " "),
		"key", key,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Set upserts the document stored under key.
func (s *PostgresStore) Set(ctx context.Context, key string, doc []byte) error {
	const query = `
		INSERT INTO documents (key, doc, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET doc = EXCLUDED.doc, updated_at = NOW()
	`

	_, err := s.db.ExecContext(ctx, query, key, doc)

	logger.Log.Infow("doc store set",
		"query", strings.Join(strings.Fields(query), " "),
		"key", key,
		"size", len(doc),
		"error", err,
	)

	return err
}

// Delete removes the document stored under key. Missing keys are a no-op.
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM documents WHERE key = $1`

	_, err := s.db.ExecContext(ctx, query, key)

	logger.Log.Infow("doc store delete",
		"query", strings.Join(strings.Fields(query), " "),
		"key", key,
		"error", err,
	)

	return err
}
