package ports

import (
	"context"
	"time"

	"github.com/coreforge/mrp/internal/core/domain"
)

// OrderFilter narrows List results. Zero values mean "no constraint".
type OrderFilter struct {
	Status domain.OrderStatus
	From   time.Time
	To     time.Time
}

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error
	Delete(ctx context.Context, id string) error
}
