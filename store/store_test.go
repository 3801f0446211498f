package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wanjiru-dev/fakestore-api/models"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func seedProducts(t *testing.T, catalog *Catalog) {
	t.Helper()
	require.NoError(t, catalog.Sync([]models.Product{
		{
			ID:     1,
			Title:  "Fjallraven Backpack",
			Price:  10.00,
			Rating: datatypes.NewJSONType(models.Rating{Rate: 3.9, Count: 120}),
		},
		{
			ID:     2,
			Title:  "Mens Casual T-Shirt",
			Price:  5.50,
			Rating: datatypes.NewJSONType(models.Rating{Rate: 4.1, Count: 259}),
		},
	}))
}
