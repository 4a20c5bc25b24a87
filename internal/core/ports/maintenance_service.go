package ports

import (
	"context"

	"github.com/coreforge/mrp/internal/core/domain"
)

// CreateTicketInput carries a new maintenance request. RequestedBy is taken
// from the verified token claims, never from the request body.
type CreateTicketInput struct {
	Equipment   string
	Description string
	Department  string
	Priority    domain.TicketPriority
	RequestedBy string
}

type MaintenanceService interface {
	Create(ctx context.Context, in CreateTicketInput) (*domain.MaintenanceRequest, error)
	Get(ctx context.Context, id string) (*domain.MaintenanceRequest, error)
	List(ctx context.Context) ([]domain.MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, id string, next domain.TicketStatus, assignedTo string) (*domain.MaintenanceRequest, error)
	Delete(ctx context.Context, id string) error
}
