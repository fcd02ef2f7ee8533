package store

import (
	"context"
	"encoding/json"

	"app/models"
)

// MemoryDriver keeps the document in RAM. Load and Save exchange JSON
// deep copies so callers can never alias the stored state. Used by tests
// and as the throwaway backend.
type MemoryDriver struct {
	raw []byte
}

// NewMemoryDriver returns a memory driver seeded with doc, or with the
// default document when doc is nil.
func NewMemoryDriver(doc *models.Document) *MemoryDriver {
	d := &MemoryDriver{}
	if doc == nil {
		doc = models.DefaultDocument()
	}
	d.raw, _ = json.Marshal(doc)
	return d
}

func (d *MemoryDriver) Load(ctx context.Context) (*models.Document, error) {
	var doc models.Document
	if err := json.Unmarshal(d.raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *MemoryDriver) Save(ctx context.Context, doc *models.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	d.raw = raw
	return nil
}

func (d *MemoryDriver) Close() error { return nil }
