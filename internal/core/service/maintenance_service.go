package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreforge/mrp/internal/api/metrics"
	"github.com/coreforge/mrp/internal/core/domain"
	"github.com/coreforge/mrp/internal/core/ports"
)

// MaintenanceService implements the equipment ticketing workflow.
type MaintenanceService struct {
	repo   ports.MaintenanceRepository
	logger zerolog.Logger
}

func NewMaintenanceService(repo ports.MaintenanceRepository, logger zerolog.Logger) *MaintenanceService {
	return &MaintenanceService{repo: repo, logger: logger}
}

func (s *MaintenanceService) Create(ctx context.Context, in ports.CreateTicketInput) (*domain.MaintenanceRequest, error) {
	now := time.Now().UTC()
	ticket := &domain.MaintenanceRequest{
		ID:          newID(),
		Equipment:   in.Equipment,
		Description: in.Description,
		Department:  in.Department,
		Priority:    in.Priority,
		Status:      domain.TicketOpen,
		RequestedBy: in.RequestedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, ticket)
	if err != nil {
		return nil, err
	}

	metrics.MaintenanceRequestsTotal.WithLabelValues(string(created.Priority)).Inc()
	s.logger.Info().
		Str("ticket_id", created.ID).
		Str("equipment", created.Equipment).
		Str("priority", string(created.Priority)).
		Msg("maintenance request created")

	return created, nil
}

func (s *MaintenanceService) Get(ctx context.Context, id string) (*domain.MaintenanceRequest, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MaintenanceService) List(ctx context.Context) ([]domain.MaintenanceRequest, error) {
	return s.repo.List(ctx)
}

// UpdateStatus moves a ticket along its state machine. Resolving stamps
// ResolvedAt; assignment may change on any transition.
func (s *MaintenanceService) UpdateStatus(ctx context.Context, id string, next domain.TicketStatus, assignedTo string) (*domain.MaintenanceRequest, error) {
	ticket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !ticket.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now().UTC()
	ticket.Status = next
	ticket.UpdatedAt = now
	if assignedTo != "" {
		ticket.AssignedTo = assignedTo
	}
	if next == domain.TicketResolved {
		ticket.ResolvedAt = &now
	}

	if err := s.repo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	s.logger.Info().Str("ticket_id", ticket.ID).Str("status", string(next)).Msg("maintenance status updated")
	return ticket, nil
}

func (s *MaintenanceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
