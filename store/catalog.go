package store

import (
	"errors"

	"github.com/wanjiru-dev/fakestore-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Catalog is the read-mostly product table mirrored from the external feed.
type Catalog struct {
	db *gorm.DB
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// Sync inserts every product whose id is not already present and leaves
// existing rows untouched, so repeating a sync with the same feed is a no-op.
func (c *Catalog) Sync(products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	if err := c.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error; err != nil {
		return persistence("catalog sync", err)
	}
	return nil
}

// Lookup fetches one product by its feed id.
func (c *Catalog) Lookup(productID int) (models.Product, error) {
	var product models.Product
	if err := c.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, persistence("catalog lookup", err)
	}
	return product, nil
}

// List returns the full catalog.
func (c *Catalog) List() ([]models.Product, error) {
	var products []models.Product
	if err := c.db.Order("id").Find(&products).Error; err != nil {
		return nil, persistence("catalog list", err)
	}
	return products, nil
}
