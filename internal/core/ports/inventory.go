package ports

import (
	"context"

	"github.com/coreforge/mrp/internal/core/domain"
)

// InventoryStore is the serialized in-process component store. All mutations
// go through the store's own lock; callers never share raw collections.
type InventoryStore interface {
	List() []domain.InventoryItem
	Get(sku string) (domain.InventoryItem, error)
	Put(item domain.InventoryItem) error
	// PutIfAbsent inserts atomically, failing with ErrDuplicateItem when
	// the SKU already exists.
	PutIfAbsent(item domain.InventoryItem) error
	// Adjust applies a signed quantity delta and returns the updated item.
	Adjust(sku string, delta int) (domain.InventoryItem, error)
}

// AdjustInput is a manual stock correction requested over the API.
type AdjustInput struct {
	SKU     string
	Delta   int
	Note    string
	Actor   string
	Inbound bool
}

type InventoryService interface {
	List(ctx context.Context) ([]domain.InventoryItem, error)
	Get(ctx context.Context, sku string) (domain.InventoryItem, error)
	CreateItem(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)
	// Adjust enqueues the correction into the movement pipeline; the change
	// is applied asynchronously, serialized per SKU.
	Adjust(ctx context.Context, in AdjustInput) error
}
