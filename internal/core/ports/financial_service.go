package ports

import (
	"context"
	"time"
)

// FinancialSummary aggregates order economics over a reporting window.
type FinancialSummary struct {
	From           time.Time `json:"from"`
	To             time.Time `json:"to"`
	Revenue        float64   `json:"revenue"`
	Cost           float64   `json:"cost"`
	GrossMargin    float64   `json:"gross_margin"`
	OrdersTotal    int       `json:"orders_total"`
	OrdersByStatus map[string]int `json:"orders_by_status"`
}

// OrderRevenueLine is one order's contribution to revenue.
type OrderRevenueLine struct {
	Number       string    `json:"number"`
	ProductID    string    `json:"product_id"`
	Quantity     int       `json:"quantity"`
	Total        float64   `json:"total"`
	Status       string    `json:"status"`
	DeliveryDate time.Time `json:"delivery_date"`
}

// PublicOverview is the unauthenticated aggregate report. Counts only;
// no customer or pricing detail leaves the building.
type PublicOverview struct {
	OrdersTotal     int   `json:"orders_total"`
	OrdersDelivered int   `json:"orders_delivered"`
	OpenTickets     int64 `json:"open_tickets"`
}

type FinancialService interface {
	Summary(ctx context.Context, from, to time.Time) (*FinancialSummary, error)
	OrderRevenue(ctx context.Context, from, to time.Time) ([]OrderRevenueLine, error)
	Overview(ctx context.Context) (*PublicOverview, error)
}
