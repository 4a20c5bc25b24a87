package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreforge/mrp/internal/api/metrics"
	"github.com/coreforge/mrp/internal/core/domain"
	"github.com/coreforge/mrp/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, sku, movementType, reference string, ts time.Time) (bool, error)
	Mark(ctx context.Context, sku, movementType, reference string, ts time.Time) error
}

type movementService struct {
	store ports.InventoryStore
	audit ports.MovementRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewMovementService returns a MovementService implementation.
func NewMovementService(
	store ports.InventoryStore,
	audit ports.MovementRepository,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.MovementService {
	return &movementService{store: store, audit: audit, dedup: dedup, log: log}
}

// Process deduplicates, applies, and audits a single stock movement.
func (s *movementService) Process(ctx context.Context, in ports.MovementInput) error {
	start := time.Now()

	// 1. Idempotency check; silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in.SKU, string(in.Type), in.Reference, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("sku", in.SKU).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.MovementsDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("sku", in.SKU).Str("reference", in.Reference).Msg("duplicate movement skipped")
		return nil
	}
	metrics.MovementsDedupTotal.WithLabelValues("miss").Inc()

	// 2. Mark as processed before writing (prevents duplicate processing on retry).
	if markErr := s.dedup.Mark(ctx, in.SKU, string(in.Type), in.Reference, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("sku", in.SKU).Msg("failed to set dedup key")
	}

	// 3. Apply the delta to the serialized component store.
	item, err := s.store.Adjust(in.SKU, in.Quantity)
	if err != nil {
		metrics.MovementsErrorsTotal.WithLabelValues("unknown_sku").Inc()
		return fmt.Errorf("process movement: %w", err)
	}

	if item.BelowMinimum() {
		s.log.Warn().
			Str("sku", item.SKU).
			Int("quantity", item.Quantity).
			Int("min_stock", item.MinStock).
			Msg("stock below minimum")
	}

	// 4. Insert into the audit trail (non-fatal on failure).
	movement := &domain.StockMovement{
		SKU:       in.SKU,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reference: in.Reference,
		Source:    in.Source,
		Timestamp: in.Timestamp,
	}
	if err := s.audit.Insert(ctx, movement); err != nil {
		metrics.MovementsErrorsTotal.WithLabelValues("audit_failed").Inc()
		s.log.Warn().Err(err).Str("sku", in.SKU).Msg("failed to insert audit movement")
	}

	metrics.MovementsProcessedTotal.WithLabelValues(string(in.Type), in.Source).Inc()
	metrics.MovementProcessingDuration.WithLabelValues(string(in.Type)).Observe(time.Since(start).Seconds())

	s.log.Info().
		Str("sku", in.SKU).
		Str("type", string(in.Type)).
		Int("delta", in.Quantity).
		Int("quantity", item.Quantity).
		Msg("movement applied")

	return nil
}
