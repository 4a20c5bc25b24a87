package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreforge/mrp/internal/core/domain"
	"github.com/coreforge/mrp/internal/core/ports"
)

// InventoryService reads the component store directly and routes every
// mutation through the movement pipeline, so writes stay serialized per SKU.
type InventoryService struct {
	store    ports.InventoryStore
	enqueuer MovementEnqueuer
	logger   zerolog.Logger
}

func NewInventoryService(store ports.InventoryStore, enqueuer MovementEnqueuer, logger zerolog.Logger) *InventoryService {
	return &InventoryService{store: store, enqueuer: enqueuer, logger: logger}
}

func (s *InventoryService) List(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.store.List(), nil
}

func (s *InventoryService) Get(ctx context.Context, sku string) (domain.InventoryItem, error) {
	return s.store.Get(sku)
}

func (s *InventoryService) CreateItem(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	item.UpdatedAt = time.Now().UTC()
	if err := s.store.PutIfAbsent(item); err != nil {
		return domain.InventoryItem{}, err
	}

	s.logger.Info().Str("sku", item.SKU).Int("quantity", item.Quantity).Msg("inventory item created")
	return item, nil
}

// Adjust enqueues a manual correction. The existence check runs up front so
// the caller gets a 404 instead of a silently dropped movement.
func (s *InventoryService) Adjust(ctx context.Context, in ports.AdjustInput) error {
	if _, err := s.store.Get(in.SKU); err != nil {
		return err
	}

	movementType := domain.MovementAdjustment
	if in.Inbound {
		movementType = domain.MovementInbound
	}

	s.enqueuer.Enqueue(ports.MovementInput{
		SKU:       in.SKU,
		Type:      movementType,
		Quantity:  in.Delta,
		Reference: in.Note,
		Source:    in.Actor,
		Timestamp: time.Now().UTC(),
	})

	return nil
}
