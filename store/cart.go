package store

import (
	"errors"

	"github.com/wanjiru-dev/fakestore-api/models"
	"gorm.io/gorm"
)

// CartStore holds the per-user cart lines.
type CartStore struct {
	db *gorm.DB
}

func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{db: db}
}

// AddResult reports the line touched by AddOrIncrement and whether it was
// newly created rather than incremented.
type AddResult struct {
	Line    models.CartItem
	Created bool
}

// AddOrIncrement adds productID to userID's cart. A line that already exists
// for the pair has its qty bumped by one; otherwise a new line with qty 1 is
// created. The increment is a single conditional UPDATE and the insert sits
// behind the unique (user, product) index, both inside one transaction, so
// concurrent adds for the same pair cannot produce duplicate rows. Unknown
// product ids are rejected with ErrNotFound.
func (s *CartStore) AddOrIncrement(userID string, productID int) (AddResult, error) {
	var res AddResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		update := tx.Model(&models.CartItem{}).
			Where("user_id = ? AND product_id = ?", userID, productID).
			Update("qty", gorm.Expr("qty + 1"))
		if update.Error != nil {
			return update.Error
		}

		if update.RowsAffected == 0 {
			line := models.CartItem{UserID: userID, ProductID: productID, Qty: 1}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			res = AddResult{Line: line, Created: true}
			return nil
		}

		var line models.CartItem
		if err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&line).Error; err != nil {
			return err
		}
		res = AddResult{Line: line}
		return nil
	})
	if err != nil {
		return AddResult{}, persistence("cart add", err)
	}
	return res, nil
}

// ListForUser returns the user's cart lines joined with their catalog
// products, in insertion order.
func (s *CartStore) ListForUser(userID string) ([]models.CartEntry, error) {
	entries, err := cartEntriesForUser(s.db, userID)
	if err != nil {
		return nil, persistence("cart list", err)
	}
	return entries, nil
}

// RemoveLine deletes one cart line by id. A nonexistent id yields
// ErrNotFound and touches nothing.
func (s *CartStore) RemoveLine(cartLineID int) error {
	result := s.db.Delete(&models.CartItem{}, cartLineID)
	if result.Error != nil {
		return persistence("cart remove", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearForUser drops every line of the user's cart. Clearing an empty cart
// is a no-op.
func (s *CartStore) ClearForUser(userID string) error {
	if err := s.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return persistence("cart clear", err)
	}
	return nil
}

// cartEntriesForUser loads the user's lines and resolves their products on
// the given handle, so checkout can run the same read inside its transaction.
func cartEntriesForUser(db *gorm.DB, userID string) ([]models.CartEntry, error) {
	var items []models.CartItem
	if err := db.Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []models.CartEntry{}, nil
	}

	ids := make([]int, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	var products []models.Product
	if err := db.Find(&products, ids).Error; err != nil {
		return nil, err
	}
	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	entries := make([]models.CartEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, models.CartEntry{
			CartID:  int(item.ID),
			Qty:     item.Qty,
			Product: byID[item.ProductID],
		})
	}
	return entries, nil
}
