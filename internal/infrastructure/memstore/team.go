package memstore

import (
	"sort"
	"sync"

	"github.com/coreforge/mrp/internal/core/domain"
)

// TeamStore is a mutex-guarded assembly-roster store keyed by employee id.
type TeamStore struct {
	mu        sync.RWMutex
	employees map[string]domain.Employee
}

// NewTeamStore initialises a store with the given seed roster.
func NewTeamStore(seed []domain.Employee) *TeamStore {
	employees := make(map[string]domain.Employee, len(seed))
	for _, e := range seed {
		employees[e.ID] = e
	}
	return &TeamStore{employees: employees}
}

// List returns a snapshot of the roster, sorted by name.
func (s *TeamStore) List() []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *TeamStore) Get(id string) (domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.employees[id]
	if !ok {
		return domain.Employee{}, domain.ErrEmployeeNotFound
	}
	return e, nil
}

// Put inserts or replaces an employee.
func (s *TeamStore) Put(e domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees[e.ID] = e
	return nil
}

func (s *TeamStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(s.employees, id)
	return nil
}
