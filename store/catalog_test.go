package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanjiru-dev/fakestore-api/models"
)

func TestSyncIsIdempotent(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalog(db)
	seedProducts(t, catalog)

	// A repeat sync, even with drifted feed values, must leave existing
	// rows untouched.
	require.NoError(t, catalog.Sync([]models.Product{
		{ID: 1, Title: "Renamed Backpack", Price: 99.99},
		{ID: 2, Title: "Mens Casual T-Shirt", Price: 5.50},
	}))

	products, err := catalog.List()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Fjallraven Backpack", products[0].Title)
	assert.Equal(t, 10.00, products[0].Price)
}

func TestSyncInsertsMissingRows(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalog(db)
	seedProducts(t, catalog)

	require.NoError(t, catalog.Sync([]models.Product{
		{ID: 1, Title: "Fjallraven Backpack", Price: 10.00},
		{ID: 3, Title: "Gold Petite Micropave", Price: 168.00},
	}))

	products, err := catalog.List()
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, 3, products[2].ID)
}

func TestSyncEmptyFeedIsNoop(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalog(db)

	require.NoError(t, catalog.Sync(nil))

	products, err := catalog.List()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestLookup(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalog(db)
	seedProducts(t, catalog)

	product, err := catalog.Lookup(2)
	require.NoError(t, err)
	assert.Equal(t, "Mens Casual T-Shirt", product.Title)
	assert.Equal(t, 4.1, product.Rating.Data().Rate)

	_, err = catalog.Lookup(404)
	assert.ErrorIs(t, err, ErrNotFound)
}
