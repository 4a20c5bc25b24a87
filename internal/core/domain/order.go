package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of a customer order.
type OrderStatus string

const (
	OrderPending      OrderStatus = "pending"
	OrderConfirmed    OrderStatus = "confirmed"
	OrderInProduction OrderStatus = "in_production"
	OrderDelivered    OrderStatus = "delivered"
	OrderCancelled    OrderStatus = "cancelled"
)

// validOrderTransitions defines the allowed state machine transitions.
var validOrderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:      {OrderConfirmed, OrderCancelled},
	OrderConfirmed:    {OrderInProduction, OrderCancelled},
	OrderInProduction: {OrderDelivered},
}

var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrOrderLocked = errors.New("order is already in production or delivered")
var ErrPastDeliveryDate = errors.New("delivery date must be in the future")
var ErrInvalidQuantity = errors.New("quantity must be greater than zero")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Deletable reports whether an order in this status may still be removed.
// Orders that reached the production line or the customer stay on record.
func (s OrderStatus) Deletable() bool {
	return s != OrderInProduction && s != OrderDelivered
}

// Order is a customer order for a quantity of one assembled product.
type Order struct {
	ID            string      `json:"id" bson:"_id,omitempty"`
	Number        string      `json:"number" bson:"number"`
	CustomerName  string      `json:"customer_name" bson:"customer_name"`
	CustomerEmail string      `json:"customer_email" bson:"customer_email"`
	ProductID     string      `json:"product_id" bson:"product_id"`
	Quantity      int         `json:"quantity" bson:"quantity"`
	UnitPrice     float64     `json:"unit_price" bson:"unit_price"`
	Total         float64     `json:"total" bson:"total"`
	Status        OrderStatus `json:"status" bson:"status"`
	DeliveryDate  time.Time   `json:"delivery_date" bson:"delivery_date"`
	CreatedAt     time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" bson:"updated_at"`
}
