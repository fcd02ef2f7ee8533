package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"app/models"
)

// PostgresDriver persists the document as a single jsonb row. Meant for
// shops that already run Postgres and want the ledger in their backed-up
// database; the whole-document contract is identical to the other drivers.
type PostgresDriver struct {
	pool *pgxpool.Pool
}

// NewPostgresDriver connects to databaseURL, creates the storage table if
// needed and seeds it with the default document on first use.
func NewPostgresDriver(ctx context.Context, databaseURL string) (*PostgresDriver, error) {
	pool, err := pgxpool.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("store: connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: ping postgres: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS app_store (
		id  INT PRIMARY KEY CHECK (id = 1),
		doc JSONB NOT NULL
	)`
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	d := &PostgresDriver{pool: pool}
	if err := d.seedIfEmpty(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return d, nil
}

func (d *PostgresDriver) seedIfEmpty(ctx context.Context) error {
	var n int
	if err := d.pool.QueryRow(ctx, "SELECT COUNT(*) FROM app_store").Scan(&n); err != nil {
		return fmt.Errorf("store: count rows: %w", err)
	}
	if n > 0 {
		return nil
	}
	return d.Save(ctx, models.DefaultDocument())
}

func (d *PostgresDriver) Load(ctx context.Context) (*models.Document, error) {
	var raw []byte
	err := d.pool.QueryRow(ctx, "SELECT doc FROM app_store WHERE id = 1").Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
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

func (d *PostgresDriver) Save(ctx context.Context, doc *models.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("store: encode document: %w", err)
	}
	_, err = d.pool.Exec(ctx,
		`INSERT INTO app_store (id, doc) VALUES (1, $1)
		 ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc`, raw)
	if err != nil {
		return fmt.Errorf("store: save document: %w", err)
	}
	return nil
}

func (d *PostgresDriver) Close() error {
	d.pool.Close()
	return nil
}
