package domain

import "time"

// MovementType classifies a stock movement.
type MovementType string

const (
	MovementInbound     MovementType = "inbound"     // goods received
	MovementConsumption MovementType = "consumption" // components consumed by an order
	MovementAdjustment  MovementType = "adjustment"  // manual stocktake correction
)

// StockMovement records a single applied change to an inventory quantity.
// The Reference ties consumption back to the order that caused it.
type StockMovement struct {
	SKU       string       `json:"sku" bson:"sku"`
	Type      MovementType `json:"type" bson:"type"`
	Quantity  int          `json:"quantity" bson:"quantity"`
	Reference string       `json:"reference" bson:"reference"`
	Source    string       `json:"source" bson:"source"`
	Timestamp time.Time    `json:"timestamp" bson:"timestamp"`
}
