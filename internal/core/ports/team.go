package ports

import (
	"context"

	"github.com/coreforge/mrp/internal/core/domain"
)

// TeamStore is the serialized in-process assembly-roster store.
type TeamStore interface {
	List() []domain.Employee
	Get(id string) (domain.Employee, error)
	Put(e domain.Employee) error
	Delete(id string) error
}

// EmployeeInput carries roster fields for create/update.
type EmployeeInput struct {
	Name       string
	Position   string
	Department string
	Shift      string
	Active     bool
}

type TeamService interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Get(ctx context.Context, id string) (domain.Employee, error)
	Create(ctx context.Context, in EmployeeInput) (domain.Employee, error)
	Update(ctx context.Context, id string, in EmployeeInput) (domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
