package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/coreforge/mrp/internal/core/domain"
	"github.com/coreforge/mrp/internal/core/ports"
)

// TeamService manages the assembly roster backed by the in-process store.
type TeamService struct {
	store  ports.TeamStore
	logger zerolog.Logger
}

func NewTeamService(store ports.TeamStore, logger zerolog.Logger) *TeamService {
	return &TeamService{store: store, logger: logger}
}

func (s *TeamService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.store.List(), nil
}

func (s *TeamService) Get(ctx context.Context, id string) (domain.Employee, error) {
	return s.store.Get(id)
}

func (s *TeamService) Create(ctx context.Context, in ports.EmployeeInput) (domain.Employee, error) {
	employee := domain.Employee{
		ID:         newID(),
		Name:       in.Name,
		Position:   in.Position,
		Department: in.Department,
		Shift:      in.Shift,
		Active:     in.Active,
	}

	if err := s.store.Put(employee); err != nil {
		return domain.Employee{}, err
	}

	s.logger.Info().Str("employee_id", employee.ID).Str("department", employee.Department).Msg("employee added")
	return employee, nil
}

func (s *TeamService) Update(ctx context.Context, id string, in ports.EmployeeInput) (domain.Employee, error) {
	employee, err := s.store.Get(id)
	if err != nil {
		return domain.Employee{}, err
	}

	employee.Name = in.Name
	employee.Position = in.Position
	employee.Department = in.Department
	employee.Shift = in.Shift
	employee.Active = in.Active

	if err := s.store.Put(employee); err != nil {
		return domain.Employee{}, err
	}
	return employee, nil
}

func (s *TeamService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(id)
}
