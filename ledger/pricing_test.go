package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSellingPriceIsCostTimesMarkup(t *testing.T) {
	doc := seedDoc()

	assert.InDelta(t, 54.24, SellingPrice(doc, "p_mango"), 1e-9)    // 33.90 * 1.6
	assert.InDelta(t, 46.35, SellingPrice(doc, "p_orange"), 1e-9)   // 30.90 * 1.5
	assert.InDelta(t, 9.01, SellingPrice(doc, "p_sugarcane"), 1e-9) // 5.30 * 1.7
	assert.Zero(t, SellingPrice(doc, "p_unknown"))
}

func TestSellingPriceTracksCostChanges(t *testing.T) {
	doc := seedDoc()

	// A pricier mango batch must show up in the price immediately.
	require.NoError(t, RecordPurchase(doc, "i_mango", 10, 1800))
	// New avg cost 150 -> product cost 41.40 -> price 66.24.
	assert.InDelta(t, 41.4, ProductCost(doc, "p_mango"), 1e-9)
	assert.InDelta(t, 66.24, SellingPrice(doc, "p_mango"), 1e-9)
}

func TestSetMarkup(t *testing.T) {
	doc := seedDoc()
	require.NoError(t, SetMarkup(doc, "p_mango", 2))
	assert.InDelta(t, 67.8, SellingPrice(doc, "p_mango"), 1e-9)

	// Zero markup is allowed (sell at a loss if the owner wants to).
	require.NoError(t, SetMarkup(doc, "p_mango", 0))
	assert.Zero(t, SellingPrice(doc, "p_mango"))
}

func TestSetMarkupRejectsNegative(t *testing.T) {
	doc := seedDoc()
	err := SetMarkup(doc, "p_mango", -1)
	var validation ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.InDelta(t, 1.6, findProduct(doc, "p_mango").Markup, 1e-9)
}

func TestSetMarkupUnknownProduct(t *testing.T) {
	doc := seedDoc()
	assert.ErrorIs(t, SetMarkup(doc, "p_unknown", 1.5), ErrProductNotFound)
}

func TestProductViews(t *testing.T) {
	doc := seedDoc()
	views := ProductViews(doc)
	require.Len(t, views, 3)
	assert.Equal(t, "p_mango", views[0].ID)
	assert.InDelta(t, 54.24, views[0].SellingPrice, 1e-9)
}
