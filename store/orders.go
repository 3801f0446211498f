package store

import (
	"errors"

	"github.com/wanjiru-dev/fakestore-api/models"
	"gorm.io/gorm"
)

// OrderLedger is the append-only record of completed orders. Orders and
// their items are immutable once written; there is no update operation.
type OrderLedger struct {
	db *gorm.DB
}

func NewOrderLedger(db *gorm.DB) *OrderLedger {
	return &OrderLedger{db: db}
}

// Get returns an order with its line items.
func (l *OrderLedger) Get(orderID int) (models.Order, error) {
	var order models.Order
	err := l.db.Preload("OrderItems").First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrNotFound
		}
		return models.Order{}, persistence("order get", err)
	}
	return order, nil
}

// recordOrder writes an order and one item per cart entry on the caller's
// transaction. Only checkout calls it, so an order can never be committed
// apart from its items.
func recordOrder(tx *gorm.DB, order *models.Order, entries []models.CartEntry) error {
	if err := tx.Create(order).Error; err != nil {
		return err
	}
	for _, entry := range entries {
		item := models.OrderItem{
			OrderID:   int(order.ID),
			ProductID: entry.Product.ID,
			Qty:       entry.Qty,
			Price:     entry.Product.Price,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
	}
	return nil
}
