package models

import "time"

// Order represents a purchase request naming products by name with quantities.
// Price and Date are set by the server on creation; values supplied by the
// client for those fields are overwritten before the order is persisted.
type Order struct {
	ID              string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProductsOrdered map[string]int `json:"productsOrdered" gorm:"serializer:json" validate:"omitempty,dive,gt=0"`
	Date            time.Time      `json:"date"`
	Price           int            `json:"price"`
}
