package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanjiru-dev/fakestore-api/models"
)

func TestAddOrIncrementKeepsOneLinePerPair(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalog(db)
	seedProducts(t, catalog)
	carts := NewCartStore(db)

	first, err := carts.AddOrIncrement("u1", 1)
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, 1, first.Line.Qty)

	for i := 0; i < 2; i++ {
		result, err := carts.AddOrIncrement("u1", 1)
		require.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, first.Line.ID, result.Line.ID)
	}

	var lines []models.CartItem
	require.NoError(t, db.Where("user_id = ?", "u1").Find(&lines).Error)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Qty)
}

func TestAddOrIncrementSeparatesUsers(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalog(db)
	seedProducts(t, catalog)
	carts := NewCartStore(db)

	a, err := carts.AddOrIncrement("u1", 1)
	require.NoError(t, err)
	b, err := carts.AddOrIncrement("u2", 1)
	require.NoError(t, err)

	assert.True(t, b.Created)
	assert.NotEqual(t, a.Line.ID, b.Line.ID)
}

func TestAddOrIncrementRejectsUnknownProduct(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalog(db)
	seedProducts(t, catalog)
	carts := NewCartStore(db)

	_, err := carts.AddOrIncrement("u1", 404)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListForUserJoinsCatalog(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalog(db)
	seedProducts(t, catalog)
	carts := NewCartStore(db)

	_, err := carts.AddOrIncrement("u1", 2)
	require.NoError(t, err)
	_, err = carts.AddOrIncrement("u1", 1)
	require.NoError(t, err)
	_, err = carts.AddOrIncrement("u1", 1)
	require.NoError(t, err)

	entries, err := carts.ListForUser("u1")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Insertion order: product 2 was added first.
	assert.Equal(t, "Mens Casual T-Shirt", entries[0].Product.Title)
	assert.Equal(t, 1, entries[0].Qty)
	assert.Equal(t, "Fjallraven Backpack", entries[1].Product.Title)
	assert.Equal(t, 2, entries[1].Qty)
	assert.Equal(t, 10.00, entries[1].Product.Price)
}

func TestListForUserEmptyCart(t *testing.T) {
	db := testDB(t)
	carts := NewCartStore(db)

	entries, err := carts.ListForUser("nobody")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemoveLine(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalog(db)
	seedProducts(t, catalog)
	carts := NewCartStore(db)

	keep, err := carts.AddOrIncrement("u1", 1)
	require.NoError(t, err)
	drop, err := carts.AddOrIncrement("u1", 2)
	require.NoError(t, err)

	require.NoError(t, carts.RemoveLine(int(drop.Line.ID)))

	err = carts.RemoveLine(9999)
	assert.ErrorIs(t, err, ErrNotFound)

	// The surviving line is untouched.
	entries, err := carts.ListForUser("u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int(keep.Line.ID), entries[0].CartID)
}

func TestClearForUserIsIdempotent(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalog(db)
	seedProducts(t, catalog)
	carts := NewCartStore(db)

	_, err := carts.AddOrIncrement("u1", 1)
	require.NoError(t, err)
	_, err = carts.AddOrIncrement("u2", 1)
	require.NoError(t, err)

	require.NoError(t, carts.ClearForUser("u1"))
	require.NoError(t, carts.ClearForUser("u1"))

	entries, err := carts.ListForUser("u1")
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Other users' carts are unaffected.
	entries, err = carts.ListForUser("u2")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
