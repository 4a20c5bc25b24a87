package ports

import (
	"context"
	"time"

	"github.com/coreforge/mrp/internal/core/domain"
)

// CreateOrderInput carries a new customer order. Quantity and delivery date
// are shape-checked at the transport boundary; the service re-validates the
// business rules (product exists, future delivery).
type CreateOrderInput struct {
	CustomerName  string
	CustomerEmail string
	ProductID     string
	Quantity      int
	DeliveryDate  time.Time
}

type OrderService interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
