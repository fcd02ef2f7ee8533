package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDriverSeedsAndRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")
	ctx := context.Background()

	d, err := NewSQLiteDriver(path)
	require.NoError(t, err)
	defer d.Close()

	doc, err := d.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, doc.Products, 3)

	doc.Settings.OwnerPhone = "+911234567890"
	doc.Inventory[0].Qty = 3.25
	require.NoError(t, d.Save(ctx, doc))

	reloaded, err := d.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+911234567890", reloaded.Settings.OwnerPhone)
	assert.InDelta(t, 3.25, reloaded.Inventory[0].Qty, 1e-9)
}

func TestSQLiteDriverKeepsDataAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")
	ctx := context.Background()

	d, err := NewSQLiteDriver(path)
	require.NoError(t, err)

	doc, err := d.Load(ctx)
	require.NoError(t, err)
	doc.Settings.LastSummaryDate = "2026-08-28"
	require.NoError(t, d.Save(ctx, doc))
	require.NoError(t, d.Close())

	reopened, err := NewSQLiteDriver(path)
	require.NoError(t, err)
	defer reopened.Close()

	reloaded, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-28", reloaded.Settings.LastSummaryDate)
}
