package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/coreforge/mrp/internal/core/domain"
	"github.com/coreforge/mrp/internal/core/ports"
)

type stubOrderService struct {
	createFn       func(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error)
	updateStatusFn func(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error)
	deleteFn       func(ctx context.Context, id string) error
}

func (s *stubOrderService) Create(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	return s.createFn(ctx, in)
}

func (s *stubOrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return nil, domain.ErrOrderNotFound
}

func (s *stubOrderService) List(ctx context.Context, filter ports.OrderFilter) ([]domain.Order, error) {
	return nil, nil
}

func (s *stubOrderService) UpdateStatus(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error) {
	return s.updateStatusFn(ctx, id, next)
}

func (s *stubOrderService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestOrderHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		createFn: func(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
			if in.Quantity != 10 || in.ProductID != "p-1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Order{ID: "o-1", Number: "ORD-00000001", Status: domain.OrderPending}, nil
		},
	}
	h := NewOrderHandler(stub)

	body := strings.NewReader(`{"customer_name":"TechParts Ltda","customer_email":"compras@techparts.com.br","product_id":"p-1","quantity":10,"delivery_date":"2026-12-01T00:00:00Z"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestOrderHandler_Create_InvalidQuantity(t *testing.T) {
	e := newTestEcho()
	h := NewOrderHandler(&stubOrderService{})

	body := strings.NewReader(`{"customer_name":"TechParts Ltda","customer_email":"compras@techparts.com.br","product_id":"p-1","quantity":0,"delivery_date":"2026-12-01T00:00:00Z"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestOrderHandler_UpdateStatus_UnknownStatus(t *testing.T) {
	e := newTestEcho()
	h := NewOrderHandler(&stubOrderService{})

	body := strings.NewReader(`{"status":"shipped"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/orders/o-1/status", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("o-1")

	err := h.UpdateStatus(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %v", err)
	}
}

func TestOrderHandler_Delete_Locked(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrOrderLocked
		},
	}
	h := NewOrderHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/orders/o-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("o-1")

	if err := h.Delete(c); err != domain.ErrOrderLocked {
		t.Fatalf("expected ErrOrderLocked to propagate, got %v", err)
	}
}
