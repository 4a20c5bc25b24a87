package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker provides stock-movement idempotency checks backed by Redis.
// Key format: dedup:<sku>:<type>:<reference>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact movement has already been applied.
func (d *DedupChecker) IsDuplicate(ctx context.Context, sku, movementType, reference string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(sku, movementType, reference, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this movement has been applied (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, sku, movementType, reference string, ts time.Time) error {
	return d.client.Set(ctx, d.key(sku, movementType, reference, ts), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(sku, movementType, reference string, ts time.Time) string {
	return fmt.Sprintf("dedup:%s:%s:%s:%d", sku, movementType, reference, ts.Unix())
}
