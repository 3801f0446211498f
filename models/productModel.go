package models

import "gorm.io/datatypes"

// Rating is the nested rating object carried by the product feed.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product mirrors one catalog entry from the external feed. The feed owns the
// id, so rows keep the feed's primary key instead of an autoincrement. Rows
// are immutable after sync.
type Product struct {
	ID          int                        `json:"id" gorm:"primaryKey"`
	Title       string                     `json:"title"`
	Price       float64                    `json:"price"`
	Description string                     `json:"description"`
	Category    string                     `json:"category"`
	Image       string                     `json:"image"`
	Rating      datatypes.JSONType[Rating] `json:"rating"`
}
