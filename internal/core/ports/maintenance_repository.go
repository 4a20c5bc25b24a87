package ports

import (
	"context"

	"github.com/coreforge/mrp/internal/core/domain"
)

type MaintenanceRepository interface {
	Create(ctx context.Context, t *domain.MaintenanceRequest) (*domain.MaintenanceRequest, error)
	FindByID(ctx context.Context, id string) (*domain.MaintenanceRequest, error)
	List(ctx context.Context) ([]domain.MaintenanceRequest, error)
	Update(ctx context.Context, t *domain.MaintenanceRequest) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status domain.TicketStatus) (int64, error)
}
