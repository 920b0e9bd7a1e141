package ports

import (
	"context"

	"github.com/plannr/todo-api/internal/core/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	// FindByTodoIDWithUser lists the comments of a todo in id order with
	// the author populated.
	FindByTodoIDWithUser(ctx context.Context, todoID int64) ([]*domain.Comment, error)
	// DeleteByID removes a comment. Deleting a missing id is not an error.
	DeleteByID(ctx context.Context, id int64) error
}
