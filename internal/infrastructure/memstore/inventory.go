// Package memstore holds the process-local stores for inventory and the
// assembly roster. Contents reset on restart; every access goes through a
// store-level lock so concurrent requests never interleave read-modify-write
// sequences on the shared collection.
package memstore

import (
	"sort"
	"sync"
	"time"

	"github.com/coreforge/mrp/internal/core/domain"
)

// InventoryStore is a mutex-guarded component store keyed by SKU.
type InventoryStore struct {
	mu    sync.RWMutex
	items map[string]domain.InventoryItem
}

// NewInventoryStore initialises a store with the given seed items.
func NewInventoryStore(seed []domain.InventoryItem) *InventoryStore {
	items := make(map[string]domain.InventoryItem, len(seed))
	for _, item := range seed {
		items[item.SKU] = item
	}
	return &InventoryStore{items: items}
}

// List returns a snapshot of every item, sorted by SKU.
func (s *InventoryStore) List() []domain.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.InventoryItem, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out
}

func (s *InventoryStore) Get(sku string) (domain.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[sku]
	if !ok {
		return domain.InventoryItem{}, domain.ErrItemNotFound
	}
	return item, nil
}

// Put inserts or replaces an item.
func (s *InventoryStore) Put(item domain.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[item.SKU] = item
	return nil
}

// PutIfAbsent inserts the item only when its SKU is free. Check and insert
// run under one write lock, so concurrent creates for the same SKU cannot
// both succeed.
func (s *InventoryStore) PutIfAbsent(item domain.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item.SKU]; ok {
		return domain.ErrDuplicateItem
	}
	s.items[item.SKU] = item
	return nil
}

// Adjust applies a signed quantity delta under the write lock and returns
// the updated item. Quantities clamp at zero: stock never goes negative.
func (s *InventoryStore) Adjust(sku string, delta int) (domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[sku]
	if !ok {
		return domain.InventoryItem{}, domain.ErrItemNotFound
	}

	item.Quantity += delta
	if item.Quantity < 0 {
		item.Quantity = 0
	}
	item.UpdatedAt = time.Now().UTC()
	s.items[sku] = item
	return item, nil
}
