package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/coreforge/mrp/internal/core/domain"
	"github.com/coreforge/mrp/internal/core/ports"
	"github.com/coreforge/mrp/internal/infrastructure/memstore"
)

func inventoryFixture() (*InventoryService, *captureEnqueuer) {
	store := memstore.NewInventoryStore([]domain.InventoryItem{
		{SKU: "DIE-Z4", Name: "Zeta 4 die", Quantity: 100, MinStock: 20, Unit: "un"},
	})
	enq := &captureEnqueuer{}
	return NewInventoryService(store, enq, zerolog.Nop()), enq
}

func TestInventoryService_CreateItem(t *testing.T) {
	svc, _ := inventoryFixture()

	item, err := svc.CreateItem(context.Background(), domain.InventoryItem{SKU: "TIM-SLD", Name: "Solder TIM", Quantity: 40, Unit: "g"})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	if item.UpdatedAt.IsZero() {
		t.Fatalf("expected UpdatedAt to be stamped")
	}

	got, err := svc.Get(context.Background(), "TIM-SLD")
	if err != nil {
		t.Fatalf("get after create: %v", err)
	}
	if got.Quantity != 40 {
		t.Fatalf("expected quantity 40, got %d", got.Quantity)
	}
}

func TestInventoryService_CreateItem_DuplicateSKU(t *testing.T) {
	svc, _ := inventoryFixture()

	_, err := svc.CreateItem(context.Background(), domain.InventoryItem{SKU: "DIE-Z4", Name: "Second die", Quantity: 5})
	if !errors.Is(err, domain.ErrDuplicateItem) {
		t.Fatalf("expected ErrDuplicateItem, got %v", err)
	}

	item, err := svc.Get(context.Background(), "DIE-Z4")
	if err != nil {
		t.Fatalf("get after rejected create: %v", err)
	}
	if item.Quantity != 100 {
		t.Fatalf("existing item overwritten: quantity %d", item.Quantity)
	}
}

func TestInventoryService_CreateItem_ConcurrentSameSKU(t *testing.T) {
	svc, _ := inventoryFixture()

	const racers = 10
	var wg sync.WaitGroup
	errs := make(chan error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(qty int) {
			defer wg.Done()
			_, err := svc.CreateItem(context.Background(), domain.InventoryItem{SKU: "IHS-STD", Quantity: qty})
			errs <- err
		}(i + 1)
	}
	wg.Wait()
	close(errs)

	var created, duplicates int
	for err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrDuplicateItem):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if created != 1 || duplicates != racers-1 {
		t.Fatalf("expected 1 create and %d duplicates, got %d and %d", racers-1, created, duplicates)
	}
}

func TestInventoryService_Adjust_EnqueuesMovement(t *testing.T) {
	svc, enq := inventoryFixture()

	err := svc.Adjust(context.Background(), ports.AdjustInput{SKU: "DIE-Z4", Delta: -15, Note: "scrap", Actor: "u-1"})
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if len(enq.movements) != 1 {
		t.Fatalf("expected 1 enqueued movement, got %d", len(enq.movements))
	}
	m := enq.movements[0]
	if m.SKU != "DIE-Z4" || m.Quantity != -15 || m.Type != domain.MovementAdjustment {
		t.Fatalf("unexpected movement: %+v", m)
	}
}

func TestInventoryService_Adjust_UnknownSKU(t *testing.T) {
	svc, enq := inventoryFixture()

	err := svc.Adjust(context.Background(), ports.AdjustInput{SKU: "NOPE", Delta: 5})
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if len(enq.movements) != 0 {
		t.Fatalf("movement enqueued for unknown SKU")
	}
}
