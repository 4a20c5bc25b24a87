package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/coreforge/mrp/internal/core/domain"
	"github.com/coreforge/mrp/internal/core/ports"
)

func TestMaintenanceService_Create(t *testing.T) {
	repo := newStubMaintenanceRepo()
	svc := NewMaintenanceService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateTicketInput{
		Equipment:   "bonder-03",
		Description: "arm drifts during pick-up",
		Department:  domain.DeptAssembly,
		Priority:    domain.PriorityHigh,
		RequestedBy: "u-1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != domain.TicketOpen {
		t.Fatalf("new ticket must open, got %s", created.Status)
	}
	if created.RequestedBy != "u-1" {
		t.Fatalf("requested_by not carried: %q", created.RequestedBy)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestMaintenanceService_UpdateStatus(t *testing.T) {
	repo := newStubMaintenanceRepo()
	svc := NewMaintenanceService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateTicketInput{
		Equipment:  "tester-01",
		Department: domain.DeptTesting,
		Priority:   domain.PriorityMedium,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), created.ID, domain.TicketResolved, ""); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("open -> resolved must fail, got %v", err)
	}

	inProgress, err := svc.UpdateStatus(context.Background(), created.ID, domain.TicketInProgress, "emp-002")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if inProgress.AssignedTo != "emp-002" {
		t.Fatalf("assignment lost: %q", inProgress.AssignedTo)
	}

	resolved, err := svc.UpdateStatus(context.Background(), created.ID, domain.TicketResolved, "")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved.ResolvedAt == nil {
		t.Fatalf("resolved ticket must carry ResolvedAt")
	}
	if resolved.AssignedTo != "emp-002" {
		t.Fatalf("empty assignment must not clear the field")
	}

	if _, err := svc.UpdateStatus(context.Background(), created.ID, domain.TicketCancelled, ""); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("resolved -> cancelled must fail, got %v", err)
	}
}

func TestMaintenanceService_Delete(t *testing.T) {
	repo := newStubMaintenanceRepo()
	svc := NewMaintenanceService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateTicketInput{
		Equipment:  "wrapper-02",
		Department: domain.DeptPackaging,
		Priority:   domain.PriorityLow,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrTicketNotFound) {
		t.Fatalf("expected ErrTicketNotFound, got %v", err)
	}
}
