package ports

import (
	"context"

	"github.com/plannr/todo-api/internal/core/domain"
)

type ManagerRepository interface {
	Create(ctx context.Context, m *domain.Manager) (*domain.Manager, error)
	FindByID(ctx context.Context, id int64) (*domain.Manager, error)
	// FindByTodoIDWithUser lists the managers of a todo with User populated.
	FindByTodoIDWithUser(ctx context.Context, todoID int64) ([]*domain.Manager, error)
	ExistsByTodoIDAndUserID(ctx context.Context, todoID, userID int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}
