package domain

import (
	"errors"
	"time"
)

var ErrItemNotFound = errors.New("inventory item not found")
var ErrDuplicateItem = errors.New("inventory item already exists")

// InventoryItem is one stocked component (die, substrate, IHS, packaging, …).
type InventoryItem struct {
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
	Unit      string    `json:"unit"`
	MinStock  int       `json:"min_stock"`
	Location  string    `json:"location"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BelowMinimum reports whether the item has fallen under its reorder point.
func (i InventoryItem) BelowMinimum() bool {
	return i.Quantity < i.MinStock
}
