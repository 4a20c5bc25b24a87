package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// denylistTTL matches the token lifetime: once every token issued before the
// mark has expired on its own, the key is useless and may lapse.
const denylistTTL = 24 * time.Hour

// TokenDenylist records per-principal revocation marks backed by Redis.
// Key format: auth:revoked:<user_id>, holding the unix seconds of the revocation.
type TokenDenylist struct {
	client *redis.Client
}

// NewTokenDenylist creates a TokenDenylist wrapping the given Redis client.
func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client}
}

// Revoke marks every token issued to userID at or before `at` as invalid.
func (d *TokenDenylist) Revoke(ctx context.Context, userID string, at time.Time) error {
	return d.client.Set(ctx, d.key(userID), at.Unix(), denylistTTL).Err()
}

// RevokedAt returns the principal's revocation mark, or the zero time when
// nothing has been revoked.
func (d *TokenDenylist) RevokedAt(ctx context.Context, userID string) (time.Time, error) {
	raw, err := d.client.Get(ctx, d.key(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("denylist lookup: %w", err)
	}

	unix, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("denylist parse: %w", err)
	}
	return time.Unix(unix, 0).UTC(), nil
}

func (d *TokenDenylist) key(userID string) string {
	return "auth:revoked:" + userID
}
