package models

import "time"

// CartItem is one (user, product, quantity) line of unconfirmed purchase
// intent. The unique index keeps at most one line per user/product pair; a
// repeat add increments Qty instead of creating a second row. Lines are
// hard-deleted (no gorm.Model soft delete): checkout and removal really
// remove the row, freeing the pair for later adds.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserID    string    `json:"userId" gorm:"index:idx_cart_user_product,unique;not null"`
	ProductID int       `json:"productId" gorm:"index:idx_cart_user_product,unique;not null"`
	Qty       int       `json:"qty" gorm:"not null;default:1"`
}

// CartEntry is a cart line joined with the catalog data the client needs to
// render it.
type CartEntry struct {
	CartID  int     `json:"cart_id"`
	Qty     int     `json:"qty"`
	Product Product `json:"product"`
}
