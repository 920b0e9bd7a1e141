package ports

import (
	"context"

	"github.com/plannr/todo-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Lookups that miss return domain.ErrUserNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateRole(ctx context.Context, id int64, role domain.Role) error
}
