package memstore

import (
	"errors"
	"sync"
	"testing"

	"github.com/coreforge/mrp/internal/core/domain"
)

func fixtureStore() *InventoryStore {
	return NewInventoryStore([]domain.InventoryItem{
		{SKU: "DIE-Z4", Name: "Zeta 4 die", Quantity: 100, MinStock: 20, Unit: "un"},
		{SKU: "IHS-STD", Name: "Standard heat spreader", Quantity: 50, MinStock: 10, Unit: "un"},
	})
}

func TestInventoryStore_ListSorted(t *testing.T) {
	store := fixtureStore()

	items := store.List()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].SKU != "DIE-Z4" || items[1].SKU != "IHS-STD" {
		t.Fatalf("list not sorted by SKU: %v, %v", items[0].SKU, items[1].SKU)
	}
}

func TestInventoryStore_GetUnknown(t *testing.T) {
	store := fixtureStore()

	if _, err := store.Get("NOPE"); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestInventoryStore_AdjustClampsAtZero(t *testing.T) {
	store := fixtureStore()

	item, err := store.Adjust("IHS-STD", -200)
	if err != nil {
		t.Fatalf("adjust failed: %v", err)
	}
	if item.Quantity != 0 {
		t.Fatalf("expected clamp at 0, got %d", item.Quantity)
	}
	if !item.BelowMinimum() {
		t.Fatalf("zero stock must be below minimum")
	}
}

func TestInventoryStore_ConcurrentAdjust(t *testing.T) {
	store := fixtureStore()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := store.Adjust("DIE-Z4", -1); err != nil {
				t.Errorf("adjust failed: %v", err)
			}
		}()
	}
	wg.Wait()

	item, err := store.Get("DIE-Z4")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if item.Quantity != 50 {
		t.Fatalf("expected 50 after 50 decrements, got %d", item.Quantity)
	}
}

func TestInventoryStore_PutIfAbsentRejectsDuplicate(t *testing.T) {
	store := fixtureStore()

	err := store.PutIfAbsent(domain.InventoryItem{SKU: "DIE-Z4", Name: "Second die", Quantity: 5})
	if !errors.Is(err, domain.ErrDuplicateItem) {
		t.Fatalf("expected ErrDuplicateItem, got %v", err)
	}

	item, err := store.Get("DIE-Z4")
	if err != nil {
		t.Fatalf("get after rejected insert: %v", err)
	}
	if item.Quantity != 100 {
		t.Fatalf("existing item overwritten: quantity %d", item.Quantity)
	}
}

func TestInventoryStore_ConcurrentPutIfAbsent(t *testing.T) {
	store := NewInventoryStore(nil)

	const racers = 20
	var wg sync.WaitGroup
	wins := make(chan struct{}, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(qty int) {
			defer wg.Done()
			if err := store.PutIfAbsent(domain.InventoryItem{SKU: "TIM-SLD", Quantity: qty}); err == nil {
				wins <- struct{}{}
			}
		}(i + 1)
	}
	wg.Wait()
	close(wins)

	var won int
	for range wins {
		won++
	}
	if won != 1 {
		t.Fatalf("expected exactly one successful insert, got %d", won)
	}
}

func TestInventoryStore_PutReplaces(t *testing.T) {
	store := fixtureStore()

	if err := store.Put(domain.InventoryItem{SKU: "DIE-Z4", Name: "Zeta 4 die rev B", Quantity: 10}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	item, err := store.Get("DIE-Z4")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if item.Name != "Zeta 4 die rev B" || item.Quantity != 10 {
		t.Fatalf("put did not replace item: %+v", item)
	}
}
