package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreforge/mrp/internal/core/domain"
	"github.com/coreforge/mrp/internal/core/ports"
)

// FinancialService computes reporting aggregates over orders and products.
// Delivered orders count as realized revenue; cancelled orders are excluded.
type FinancialService struct {
	orders      ports.OrderRepository
	products    ports.ProductRepository
	maintenance ports.MaintenanceRepository
	logger      zerolog.Logger
}

func NewFinancialService(
	orders ports.OrderRepository,
	products ports.ProductRepository,
	maintenance ports.MaintenanceRepository,
	logger zerolog.Logger,
) *FinancialService {
	return &FinancialService{orders: orders, products: products, maintenance: maintenance, logger: logger}
}

func (s *FinancialService) Summary(ctx context.Context, from, to time.Time) (*ports.FinancialSummary, error) {
	orders, err := s.orders.List(ctx, ports.OrderFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}

	costByProductID := make(map[string]float64)
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		costByProductID[p.ID] = p.UnitCost
	}

	summary := &ports.FinancialSummary{
		From:           from,
		To:             to,
		OrdersByStatus: make(map[string]int),
	}

	for _, o := range orders {
		summary.OrdersTotal++
		summary.OrdersByStatus[string(o.Status)]++

		if o.Status == domain.OrderCancelled {
			continue
		}
		if o.Status == domain.OrderDelivered {
			summary.Revenue += o.Total
			summary.Cost += costByProductID[o.ProductID] * float64(o.Quantity)
		}
	}
	summary.GrossMargin = summary.Revenue - summary.Cost

	return summary, nil
}

func (s *FinancialService) OrderRevenue(ctx context.Context, from, to time.Time) ([]ports.OrderRevenueLine, error) {
	orders, err := s.orders.List(ctx, ports.OrderFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}

	lines := make([]ports.OrderRevenueLine, 0, len(orders))
	for _, o := range orders {
		if o.Status == domain.OrderCancelled {
			continue
		}
		lines = append(lines, ports.OrderRevenueLine{
			Number:       o.Number,
			ProductID:    o.ProductID,
			Quantity:     o.Quantity,
			Total:        o.Total,
			Status:       string(o.Status),
			DeliveryDate: o.DeliveryDate,
		})
	}
	return lines, nil
}

// Overview is the public aggregate report: counts only.
func (s *FinancialService) Overview(ctx context.Context) (*ports.PublicOverview, error) {
	orders, err := s.orders.List(ctx, ports.OrderFilter{})
	if err != nil {
		return nil, err
	}

	openTickets, err := s.maintenance.CountByStatus(ctx, domain.TicketOpen)
	if err != nil {
		return nil, err
	}

	overview := &ports.PublicOverview{OpenTickets: openTickets}
	for _, o := range orders {
		overview.OrdersTotal++
		if o.Status == domain.OrderDelivered {
			overview.OrdersDelivered++
		}
	}
	return overview, nil
}
