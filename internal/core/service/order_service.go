package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreforge/mrp/internal/api/metrics"
	"github.com/coreforge/mrp/internal/core/domain"
	"github.com/coreforge/mrp/internal/core/ports"
)

// MovementEnqueuer is the interface the order service uses to hand stock
// movements to the dispatcher.
type MovementEnqueuer interface {
	Enqueue(m ports.MovementInput)
	EnqueueBatch(ms []ports.MovementInput)
}

// OrderService implements order intake and lifecycle management.
type OrderService struct {
	orders   ports.OrderRepository
	products ports.ProductRepository
	enqueuer MovementEnqueuer
	logger   zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, products ports.ProductRepository, enqueuer MovementEnqueuer, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, products: products, enqueuer: enqueuer, logger: logger}
}

// Create validates the business rules, persists the order, and enqueues one
// consumption movement per BOM component so stock is drawn down per SKU.
func (s *OrderService) Create(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if !in.DeliveryDate.After(time.Now()) {
		return nil, domain.ErrPastDeliveryDate
	}

	product, err := s.products.FindByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:            newID(),
		Number:        generateOrderNumber(),
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		ProductID:     product.ID,
		Quantity:      in.Quantity,
		UnitPrice:     product.UnitPrice,
		Total:         product.UnitPrice * float64(in.Quantity),
		Status:        domain.OrderPending,
		DeliveryDate:  in.DeliveryDate.UTC(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	movements := make([]ports.MovementInput, 0, len(product.BOM))
	for _, line := range product.BOM {
		movements = append(movements, ports.MovementInput{
			SKU:       line.SKU,
			Type:      domain.MovementConsumption,
			Quantity:  -line.Quantity * created.Quantity,
			Reference: created.Number,
			Source:    "order_intake",
			Timestamp: now,
		})
	}
	s.enqueuer.EnqueueBatch(movements)

	metrics.OrdersCreatedTotal.WithLabelValues(product.Category).Inc()
	s.logger.Info().Str("number", created.Number).Str("product_id", product.ID).Int("quantity", created.Quantity).Msg("order created")

	return created, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *OrderService) List(ctx context.Context, filter ports.OrderFilter) ([]domain.Order, error) {
	return s.orders.List(ctx, filter)
}

// UpdateStatus moves an order along its state machine.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}

	order.Status = next
	order.UpdatedAt = time.Now().UTC()
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info().Str("number", order.Number).Str("status", string(next)).Msg("order status updated")
	return order, nil
}

// Delete removes an order unless it has already reached the line or the
// customer. The rejected order is left untouched.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !order.Status.Deletable() {
		return domain.ErrOrderLocked
	}

	return s.orders.Delete(ctx, id)
}
