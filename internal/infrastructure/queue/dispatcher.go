package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/coreforge/mrp/internal/api/metrics"
	"github.com/coreforge/mrp/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes stock movements to a fixed set of workers using
// consistent hashing on the SKU, guaranteeing per-SKU application ordering.
type Dispatcher struct {
	workers  []chan ports.MovementInput
	service  ports.MovementService
	log      zerolog.Logger
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.MovementService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.MovementInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.MovementInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. ctx only bounds the individual
// Process calls: workers keep draining until Stop closes the queue, so a
// cancelled ctx never strands accepted movements.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Stop closes the worker queues and blocks until every queued movement has
// been processed. No Enqueue may follow Stop.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		for _, ch := range d.workers {
			close(ch)
		}
	})
	d.wg.Wait()
}

// Enqueue sends a movement to the worker responsible for its SKU.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(m ports.MovementInput) {
	idx := d.shardIndex(m.SKU)
	d.workers[idx] <- m
	metrics.MovementQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// EnqueueBatch enqueues multiple movements preserving per-SKU ordering.
func (d *Dispatcher) EnqueueBatch(ms []ports.MovementInput) {
	for _, m := range ms {
		d.Enqueue(m)
	}
}

// shardIndex maps a SKU deterministically to a worker index.
func (d *Dispatcher) shardIndex(sku string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sku))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.MovementInput) {
	defer d.wg.Done()
	worker := strconv.Itoa(id)
	for m := range ch {
		metrics.MovementQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
		if err := d.service.Process(ctx, m); err != nil {
			d.log.Error().Err(err).
				Str("sku", m.SKU).
				Int("worker_id", id).
				Msg("movement processing failed")
		}
	}
}
