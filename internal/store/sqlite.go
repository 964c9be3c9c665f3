package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id         TEXT NOT NULL,
	body       TEXT NOT NULL,
	PRIMARY KEY (collection, id)
);`

// SQLite is a Store backed by a single sqlite documents table.
type SQLite struct {
	pool *sql.DB
}

// OpenSQLite opens (and initializes if needed) a sqlite document store.
func OpenSQLite(path string) (*SQLite, error) {
	// modernc sqlite uses DSN like: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// sqlite typically wants a single writer
	pool.SetMaxOpenConns(1)
	pool.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, err
	}
	if _, err := pool.ExecContext(ctx, schema); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("initializing documents table: %w", err)
	}

	return &SQLite{pool: pool}, nil
}

func (s *SQLite) Close() error {
	if s == nil || s.pool == nil {
		return nil
	}
	return s.pool.Close()
}

// Put stores a document as JSON, replacing any previous value.
func (s *SQLite) Put(ctx context.Context, collection, id string, doc Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document %s/%s: %w", collection, id, err)
	}
	_, err = s.pool.ExecContext(ctx,
		`INSERT OR REPLACE INTO documents (collection, id, body) VALUES (?, ?, ?)`,
		collection, id, string(body))
	return err
}

func (s *SQLite) FindOne(ctx context.Context, collection, id string) (Document, error) {
	var body string
	err := s.pool.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE collection = ? AND id = ?`,
		collection, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeDocument(collection, id, body)
}

func (s *SQLite) FindMany(ctx context.Context, collection string, ids []string) ([]Document, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, 0, len(ids)+1)
	args = append(args, collection)
	for _, id := range ids {
		args = append(args, id)
	}

	rows, err := s.pool.QueryContext(ctx,
		`SELECT id, body FROM documents WHERE collection = ? AND id IN (`+placeholders+`)`,
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectDocuments(collection, rows)
}

func (s *SQLite) FindAll(ctx context.Context, collection string) ([]Document, error) {
	rows, err := s.pool.QueryContext(ctx,
		`SELECT id, body FROM documents WHERE collection = ? ORDER BY id`,
		collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectDocuments(collection, rows)
}

func collectDocuments(collection string, rows *sql.Rows) ([]Document, error) {
	var docs []Document
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, err
		}
		doc, err := decodeDocument(collection, id, body)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func decodeDocument(collection, id, body string) (Document, error) {
	doc := Document{}
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("decoding document %s/%s: %w", collection, id, err)
	}
	doc["_id"] = id
	return doc, nil
}
