// Package store persists the shop document. The whole document is the
// unit of every read and write: Load returns a full snapshot, Save
// replaces it wholesale. A package mutex serializes access so a mutation
// is always applied to the snapshot it was computed from. Two processes
// pointed at the same backing file still race last-write-wins; the
// intended deployment is a single register, so this is documented rather
// than fixed.
package store

import (
	"context"
	"errors"
	"sync"

	"app/models"
)

// Driver loads and saves the whole shop document.
type Driver interface {
	Load(ctx context.Context) (*models.Document, error)
	Save(ctx context.Context, doc *models.Document) error
	Close() error
}

var (
	mu     sync.Mutex
	driver Driver
)

// ErrNotInitialized is returned when the store is used before Init.
var ErrNotInitialized = errors.New("store: not initialized")

// Init installs the backing driver.
func Init(d Driver) {
	mu.Lock()
	defer mu.Unlock()
	driver = d
}

// Close releases the backing driver.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if driver == nil {
		return nil
	}
	err := driver.Close()
	driver = nil
	return err
}

// View runs fn against a snapshot of the document. Mutations made by fn
// are discarded.
func View(ctx context.Context, fn func(doc *models.Document) error) error {
	mu.Lock()
	defer mu.Unlock()
	if driver == nil {
		return ErrNotInitialized
	}
	doc, err := driver.Load(ctx)
	if err != nil {
		return err
	}
	return fn(doc)
}

// Update runs fn against a snapshot of the document and writes the whole
// document back when fn succeeds. When fn fails nothing is persisted.
func Update(ctx context.Context, fn func(doc *models.Document) error) error {
	mu.Lock()
	defer mu.Unlock()
	if driver == nil {
		return ErrNotInitialized
	}
	doc, err := driver.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return driver.Save(ctx, doc)
}
