package store

import (
	"regexp"
	"strings"

	"github.com/wanjiru-dev/fakestore-api/models"
	"gorm.io/gorm"
)

// emailPattern accepts local@domain.tld shapes: no whitespace, exactly one
// @, at least one dot after it.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CheckoutProcessor converts a user's cart into an immutable order.
type CheckoutProcessor struct {
	db *gorm.DB
}

func NewCheckoutProcessor(db *gorm.DB) *CheckoutProcessor {
	return &CheckoutProcessor{db: db}
}

// Checkout validates the customer data, totals the user's cart at current
// catalog prices, writes the order with its line snapshots, and clears the
// cart. The read, order write, and clear commit as one transaction: a
// failure anywhere rolls the whole thing back and leaves the cart untouched,
// so a failed checkout is safe to retry.
func (p *CheckoutProcessor) Checkout(userID, customerName, customerEmail string) (models.Receipt, error) {
	if strings.TrimSpace(userID) == "" {
		return models.Receipt{}, &ValidationError{Field: "user_id", Reason: "must not be empty"}
	}
	if strings.TrimSpace(customerName) == "" {
		return models.Receipt{}, &ValidationError{Field: "customer_name", Reason: "must not be empty"}
	}
	if !emailPattern.MatchString(customerEmail) {
		return models.Receipt{}, &ValidationError{Field: "customer_email", Reason: "must look like local@domain.tld"}
	}

	tx := p.db.Begin()
	if tx.Error != nil {
		return models.Receipt{}, persistence("checkout begin", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	entries, err := cartEntriesForUser(tx, userID)
	if err != nil {
		tx.Rollback()
		return models.Receipt{}, persistence("checkout cart read", err)
	}
	if len(entries) == 0 {
		tx.Rollback()
		return models.Receipt{}, ErrEmptyCart
	}

	total := 0.0
	for _, entry := range entries {
		total += entry.Product.Price * float64(entry.Qty)
	}

	order := models.Order{
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Total:         total,
	}
	if err := recordOrder(tx, &order, entries); err != nil {
		tx.Rollback()
		return models.Receipt{}, persistence("checkout order write", err)
	}

	if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		return models.Receipt{}, persistence("checkout cart clear", err)
	}

	if err := tx.Commit().Error; err != nil {
		return models.Receipt{}, persistence("checkout commit", err)
	}

	// The receipt is built from the lines read above, not re-read from
	// storage, so a concurrent mutation of the same user's cart cannot leak
	// into it.
	items := make([]models.ReceiptItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, models.ReceiptItem{
			Name:  entry.Product.Title,
			Qty:   entry.Qty,
			Price: entry.Product.Price,
		})
	}
	return models.Receipt{
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Total:         total,
		Timestamp:     order.CreatedAt,
		Items:         items,
	}, nil
}
