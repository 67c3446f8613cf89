package entity

import "time"

// DefaultSweetDescription is applied when a sweet is created without one.
const DefaultSweetDescription = "Delicious traditional sweet"

// Sweet is a stock-keeping unit in the shop inventory.
// Quantity must never go below zero; repositories enforce this on purchase.
type Sweet struct {
	ID          int64
	Name        string
	Category    string
	Price       float64
	Quantity    int
	Description string
	CreatedAt   time.Time
}
