package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreforge/mrp/internal/core/domain"
)

type stubMaintenanceRepo struct {
	tickets map[string]*domain.MaintenanceRequest
}

func newStubMaintenanceRepo() *stubMaintenanceRepo {
	return &stubMaintenanceRepo{tickets: make(map[string]*domain.MaintenanceRequest)}
}

func (r *stubMaintenanceRepo) Create(_ context.Context, t *domain.MaintenanceRequest) (*domain.MaintenanceRequest, error) {
	clone := *t
	r.tickets[t.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubMaintenanceRepo) FindByID(_ context.Context, id string) (*domain.MaintenanceRequest, error) {
	t, ok := r.tickets[id]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubMaintenanceRepo) List(_ context.Context) ([]domain.MaintenanceRequest, error) {
	out := make([]domain.MaintenanceRequest, 0, len(r.tickets))
	for _, t := range r.tickets {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubMaintenanceRepo) Update(_ context.Context, t *domain.MaintenanceRequest) error {
	if _, ok := r.tickets[t.ID]; !ok {
		return domain.ErrTicketNotFound
	}
	clone := *t
	r.tickets[t.ID] = &clone
	return nil
}

func (r *stubMaintenanceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tickets[id]; !ok {
		return domain.ErrTicketNotFound
	}
	delete(r.tickets, id)
	return nil
}

func (r *stubMaintenanceRepo) CountByStatus(_ context.Context, status domain.TicketStatus) (int64, error) {
	var n int64
	for _, t := range r.tickets {
		if t.Status == status {
			n++
		}
	}
	return n, nil
}

func seedFinancialFixtures(t *testing.T, orders *stubOrderRepo, products *stubProductRepo) {
	t.Helper()
	ctx := context.Background()

	if _, err := products.Create(ctx, &domain.Product{ID: "p-1", SKU: "CPU-Z4-8C", Category: domain.CategoryCPU, UnitPrice: 400, UnitCost: 180}); err != nil {
		t.Fatalf("seed product: %v", err)
	}

	rows := []domain.Order{
		{ID: "o-1", Number: "ORD-1", ProductID: "p-1", Quantity: 10, Total: 4000, Status: domain.OrderDelivered},
		{ID: "o-2", Number: "ORD-2", ProductID: "p-1", Quantity: 5, Total: 2000, Status: domain.OrderPending},
		{ID: "o-3", Number: "ORD-3", ProductID: "p-1", Quantity: 3, Total: 1200, Status: domain.OrderCancelled},
	}
	for i := range rows {
		if _, err := orders.Create(ctx, &rows[i]); err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}
}

func TestFinancialService_Summary(t *testing.T) {
	orders := newStubOrderRepo()
	products := newStubProductRepo()
	seedFinancialFixtures(t, orders, products)

	svc := NewFinancialService(orders, products, newStubMaintenanceRepo(), zerolog.Nop())

	summary, err := svc.Summary(context.Background(), time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.OrdersTotal != 3 {
		t.Fatalf("expected 3 orders, got %d", summary.OrdersTotal)
	}
	// Only the delivered order counts as realized revenue.
	if summary.Revenue != 4000 {
		t.Fatalf("expected revenue 4000, got %v", summary.Revenue)
	}
	if summary.Cost != 1800 {
		t.Fatalf("expected cost 1800, got %v", summary.Cost)
	}
	if summary.GrossMargin != 2200 {
		t.Fatalf("expected margin 2200, got %v", summary.GrossMargin)
	}
	if summary.OrdersByStatus["cancelled"] != 1 {
		t.Fatalf("expected 1 cancelled in status map, got %d", summary.OrdersByStatus["cancelled"])
	}
}

func TestFinancialService_OrderRevenue_ExcludesCancelled(t *testing.T) {
	orders := newStubOrderRepo()
	products := newStubProductRepo()
	seedFinancialFixtures(t, orders, products)

	svc := NewFinancialService(orders, products, newStubMaintenanceRepo(), zerolog.Nop())

	lines, err := svc.OrderRevenue(context.Background(), time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("order revenue failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, l := range lines {
		if l.Status == string(domain.OrderCancelled) {
			t.Fatalf("cancelled order leaked into revenue lines")
		}
	}
}

func TestFinancialService_Overview(t *testing.T) {
	orders := newStubOrderRepo()
	products := newStubProductRepo()
	seedFinancialFixtures(t, orders, products)

	maintenance := newStubMaintenanceRepo()
	_, _ = maintenance.Create(context.Background(), &domain.MaintenanceRequest{ID: "t-1", Status: domain.TicketOpen})
	_, _ = maintenance.Create(context.Background(), &domain.MaintenanceRequest{ID: "t-2", Status: domain.TicketResolved})

	svc := NewFinancialService(orders, products, maintenance, zerolog.Nop())

	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if overview.OrdersTotal != 3 {
		t.Fatalf("expected 3 orders, got %d", overview.OrdersTotal)
	}
	if overview.OrdersDelivered != 1 {
		t.Fatalf("expected 1 delivered, got %d", overview.OrdersDelivered)
	}
	if overview.OpenTickets != 1 {
		t.Fatalf("expected 1 open ticket, got %d", overview.OpenTickets)
	}
}
