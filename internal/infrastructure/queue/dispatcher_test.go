package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreforge/mrp/internal/core/ports"
)

type recordingService struct {
	mu       sync.Mutex
	byWorker map[string][]int
	done     chan struct{}
	want     int
	total    int
	sums     map[string]int
}

func newRecordingService(want int) *recordingService {
	return &recordingService{
		byWorker: make(map[string][]int),
		sums:     make(map[string]int),
		done:     make(chan struct{}),
		want:     want,
	}
}

func (s *recordingService) Process(_ context.Context, in ports.MovementInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sums[in.SKU] += in.Quantity
	s.total++
	if s.total == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(4, nil, zerolog.Nop())

	for _, sku := range []string{"DIE-Z4", "DIE-Z8", "SUB-AM5", "IHS-STD"} {
		first := d.shardIndex(sku)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(sku); got != first {
				t.Fatalf("shard for %s not stable: %d vs %d", sku, first, got)
			}
		}
		if first < 0 || first >= 4 {
			t.Fatalf("shard out of range: %d", first)
		}
	}
}

func TestDispatcher_ProcessesAllMovements(t *testing.T) {
	const perSKU = 20
	skus := []string{"DIE-Z4", "IHS-STD", "TIM-SLD"}

	svc := newRecordingService(perSKU * len(skus))
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	var wg sync.WaitGroup
	for _, sku := range skus {
		wg.Add(1)
		go func(sku string) {
			defer wg.Done()
			for i := 0; i < perSKU; i++ {
				d.Enqueue(ports.MovementInput{SKU: sku, Quantity: -1, Timestamp: time.Now()})
			}
		}(sku)
	}
	wg.Wait()

	select {
	case <-svc.done:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for movements, processed %d", svc.total)
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for _, sku := range skus {
		if svc.sums[sku] != -perSKU {
			t.Fatalf("expected sum %d for %s, got %d", -perSKU, sku, svc.sums[sku])
		}
	}
}

func TestDispatcher_StopDrainsQueuedMovements(t *testing.T) {
	svc := newRecordingService(2)
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()

	// Mirrors an order accepted while the server is draining: the
	// consumption movements land after the signal context is gone.
	d.EnqueueBatch([]ports.MovementInput{
		{SKU: "DIE-Z4", Quantity: -10, Timestamp: time.Now()},
		{SKU: "IHS-STD", Quantity: -10, Timestamp: time.Now()},
	})
	d.Stop()

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if svc.total != 2 {
		t.Fatalf("expected 2 processed movements, got %d", svc.total)
	}
	if svc.sums["DIE-Z4"] != -10 || svc.sums["IHS-STD"] != -10 {
		t.Fatalf("unexpected sums: %v", svc.sums)
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, nil, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
