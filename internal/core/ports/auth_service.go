package ports

import (
	"context"

	"github.com/coreforge/mrp/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string, role domain.Role) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	ChangePassword(ctx context.Context, userID, current, next string) error
	Logout(ctx context.Context, userID string) error
}
