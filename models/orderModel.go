package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is the immutable record of a completed checkout. Total is computed
// once from catalog prices at checkout time and never recomputed.
type Order struct {
	gorm.Model
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	Total         float64     `json:"total"`
	OrderItems    []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem snapshots one cart line at checkout time. Price is the catalog
// price at that instant, independent of later catalog changes.
type OrderItem struct {
	gorm.Model
	OrderID   int     `json:"orderId"`
	ProductID int     `json:"productId"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

// Receipt is the checkout response payload.
type Receipt struct {
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	Total         float64       `json:"total"`
	Timestamp     time.Time     `json:"timestamp"`
	Items         []ReceiptItem `json:"items"`
}

// ReceiptItem is one line of a receipt.
type ReceiptItem struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}
