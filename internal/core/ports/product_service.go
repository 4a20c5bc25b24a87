package ports

import (
	"context"

	"github.com/coreforge/mrp/internal/core/domain"
)

// CreateProductInput carries a new catalogue entry.
type CreateProductInput struct {
	SKU              string
	Name             string
	Category         string
	UnitPrice        float64
	UnitCost         float64
	BuildTimeMinutes int
	BOM              []domain.BOMItem
}

type ProductService interface {
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, id string, in CreateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
