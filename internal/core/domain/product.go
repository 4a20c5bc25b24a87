package domain

import (
	"errors"
	"time"
)

const (
	CategoryCPU      = "cpu"
	CategoryAPU      = "apu"
	CategoryEmbedded = "embedded"
)

var ErrProductNotFound = errors.New("product not found")
var ErrDuplicateSKU = errors.New("product SKU already exists")

// BOMItem is one bill-of-materials line: the component SKU and how many
// units of it go into a single assembled product.
type BOMItem struct {
	SKU      string `json:"sku" bson:"sku"`
	Quantity int    `json:"quantity" bson:"quantity"`
}

// Product is an assembled CPU model offered to customers.
type Product struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	SKU              string    `json:"sku" bson:"sku"`
	Name             string    `json:"name" bson:"name"`
	Category         string    `json:"category" bson:"category"`
	UnitPrice        float64   `json:"unit_price" bson:"unit_price"`
	UnitCost         float64   `json:"unit_cost" bson:"unit_cost"`
	BuildTimeMinutes int       `json:"build_time_minutes" bson:"build_time_minutes"`
	BOM              []BOMItem `json:"bom" bson:"bom"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" bson:"updated_at"`
}
