package ports

import (
	"context"
	"time"

	"github.com/coreforge/mrp/internal/core/domain"
)

// MovementInput is one stock movement waiting to be applied. Quantity is a
// signed delta: negative for consumption, positive for inbound stock.
type MovementInput struct {
	SKU       string
	Type      domain.MovementType
	Quantity  int
	Reference string
	Source    string
	Timestamp time.Time
}

// MovementRepository persists the applied-movement audit trail.
type MovementRepository interface {
	Insert(ctx context.Context, m *domain.StockMovement) error
	ListBySKU(ctx context.Context, sku string, limit int) ([]domain.StockMovement, error)
}

// MovementService applies one movement: dedup, adjust stock, audit.
type MovementService interface {
	Process(ctx context.Context, in MovementInput) error
}
