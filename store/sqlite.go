package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"app/models"
)

// SQLiteDriver persists the document as a single JSON row in a local
// SQLite file. This is the default backend: no server required, one file
// next to the binary.
type SQLiteDriver struct {
	db *sql.DB
}

// NewSQLiteDriver opens (or creates) the database file and seeds it with
// the default document on first use.
func NewSQLiteDriver(path string) (*SQLiteDriver, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	// A single writer at a time keeps the whole-document contract simple.
	db.SetMaxOpenConns(1)

	schema := `CREATE TABLE IF NOT EXISTS app_store (
		id  INTEGER PRIMARY KEY CHECK (id = 1),
		doc TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	d := &SQLiteDriver{db: db}
	if err := d.seedIfEmpty(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func (d *SQLiteDriver) seedIfEmpty(ctx context.Context) error {
	var n int
	if err := d.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM app_store").Scan(&n); err != nil {
		return fmt.Errorf("store: count rows: %w", err)
	}
	if n > 0 {
		return nil
	}
	return d.Save(ctx, models.DefaultDocument())
}

func (d *SQLiteDriver) Load(ctx context.Context) (*models.Document, error) {
	var raw []byte
	err := d.db.QueryRowContext(ctx, "SELECT doc FROM app_store WHERE id = 1").Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: load document: %w", err)
	}
	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("store: decode document: %w", err)
	}
	return &doc, nil
}

func (d *SQLiteDriver) Save(ctx context.Context, doc *models.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("store: encode document: %w", err)
	}
	_, err = d.db.ExecContext(ctx,
		`INSERT INTO app_store (id, doc) VALUES (1, ?)
		 ON CONFLICT (id) DO UPDATE SET doc = excluded.doc`, string(raw))
	if err != nil {
		return fmt.Errorf("store: save document: %w", err)
	}
	return nil
}

func (d *SQLiteDriver) Close() error { return d.db.Close() }
