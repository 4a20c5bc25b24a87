package ports

import (
	"context"

	"github.com/coreforge/mrp/internal/core/domain"
)

// UpdateUserInput carries the administrative fields that may change after
// registration. Nil fields are left untouched.
type UpdateUserInput struct {
	Name *string
	Role *domain.Role
}

// UserService covers the administrator-only account operations.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
